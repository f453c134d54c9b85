// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpg2k/lcf"
	"github.com/rpg2k/lcf/ldb"
	"github.com/rpg2k/lcf/lmt"
	"github.com/rpg2k/lcf/lmu"
	"github.com/rpg2k/lcf/lsd"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert between a file's binary form and its XML mirror",
	Long:  "Direction is inferred from the output file's extension: .xml converts binary->XML, anything else converts XML->binary.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]
		toXML := strings.ToLower(filepath.Ext(out)) == ".xml"
		kind := strings.ToLower(filepath.Ext(out))
		if toXML {
			kind = strings.ToLower(filepath.Ext(in))
		}

		rtpIni, _ := cmd.Flags().GetString("rtp-ini")
		enc, err := loadRTPEncoding(rtpIni)
		if err != nil {
			return err
		}

		outFile, err := os.Create(out)
		if err != nil {
			return err
		}
		defer outFile.Close()

		if toXML {
			return convertToXML(kind, in, outFile, enc)
		}
		return convertFromXML(kind, in, outFile, enc)
	},
}

func convertToXML(kind, in string, out *os.File, enc string) error {
	xw := lcf.NewXMLWriter(out)
	switch kind {
	case ".ldb":
		db, _, err := ldb.Load(in, &ldb.Options{Encoding: enc})
		if err != nil {
			return err
		}
		return ldb.SaveXML(xw, db)
	case ".lmt":
		tm, _, err := lmt.Load(in, &lmt.Options{Encoding: enc})
		if err != nil {
			return err
		}
		return lmt.SaveXML(xw, tm)
	case ".lmu":
		m, _, err := lmu.Load(in, &lmu.Options{Encoding: enc})
		if err != nil {
			return err
		}
		return lmu.SaveXML(xw, m)
	case ".lsd":
		s, _, err := lsd.Load(in, &lsd.Options{Encoding: enc})
		if err != nil {
			return err
		}
		return lsd.SaveXML(xw, s)
	default:
		return fmt.Errorf("unrecognized extension: %s", in)
	}
}

func convertFromXML(kind, in string, out *os.File, enc string) error {
	inFile, err := os.Open(in)
	if err != nil {
		return err
	}
	defer inFile.Close()
	xr := lcf.NewXMLReader(inFile)

	switch kind {
	case ".ldb":
		db, err := ldb.LoadXML(xr)
		if err != nil {
			return err
		}
		b, err := ldb.SaveBytes(db, &ldb.Options{Encoding: enc})
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	case ".lmt":
		tm, err := lmt.LoadXML(xr)
		if err != nil {
			return err
		}
		b, err := lmt.SaveBytes(tm, &lmt.Options{Encoding: enc})
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	case ".lmu":
		m, err := lmu.LoadXML(xr)
		if err != nil {
			return err
		}
		b, err := lmu.SaveBytes(m, &lmu.Options{Encoding: enc})
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	case ".lsd":
		s, err := lsd.LoadXML(xr)
		if err != nil {
			return err
		}
		b, err := lsd.SaveBytes(s, &lsd.Options{Encoding: enc})
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	default:
		return fmt.Errorf("unrecognized extension: %s", in)
	}
}

func init() {
	convertCmd.Flags().String("rtp-ini", "", "path to an RPG_RT.ini to resolve string encoding from; without it, loading detects the encoding and saving uses Windows-1252")
	rootCmd.AddCommand(convertCmd)
}
