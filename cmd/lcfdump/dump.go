// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/rpg2k/lcf/ini"
	"github.com/rpg2k/lcf/ldb"
	"github.com/rpg2k/lcf/lmt"
	"github.com/rpg2k/lcf/lmu"
	"github.com/rpg2k/lcf/lsd"
)

// rtpEncoding holds the codepage resolved from an RPG_RT.ini (--rtp-ini),
// shared by every dumpWorker so a whole project directory decodes
// consistently instead of re-detecting the encoding file by file.
var rtpEncoding string

func loadRTPEncoding(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	cfg, err := ini.Parse(f)
	if err != nil {
		return "", err
	}
	codepage, ok := cfg.GetEncoding()
	if !ok {
		return "", fmt.Errorf("%s: no usable Encoding= under [RPG_RT]", path)
	}
	return codepage, nil
}

// jobs/wg run a fixed worker pool draining a path channel rather than a
// single-threaded filepath.Walk, so dumping a whole RPG2k project directory
// (hundreds of .lmu map files) doesn't serialize on file I/O.
var (
	jobs    chan string
	wg      sync.WaitGroup
	dumpErr sync.Map // path -> error, collected instead of aborting the walk
)

func prettyJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "\t"); err != nil {
		return string(b), nil
	}
	return buf.String(), nil
}

func dumpOne(path string) (interface{}, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ldb":
		db, warnings, err := ldb.Load(path, &ldb.Options{Encoding: rtpEncoding})
		if err != nil {
			return nil, err
		}
		return struct {
			Warnings []string    `json:"warnings,omitempty"`
			Database interface{} `json:"database"`
		}{Warnings: warnings, Database: db}, nil

	case ".lmt":
		tm, warnings, err := lmt.Load(path, &lmt.Options{Encoding: rtpEncoding})
		if err != nil {
			return nil, err
		}
		return struct {
			Warnings []string    `json:"warnings,omitempty"`
			TreeMap  interface{} `json:"tree_map"`
		}{Warnings: warnings, TreeMap: tm}, nil

	case ".lmu":
		m, warnings, err := lmu.Load(path, &lmu.Options{Encoding: rtpEncoding})
		if err != nil {
			return nil, err
		}
		return struct {
			Warnings []string    `json:"warnings,omitempty"`
			Map      interface{} `json:"map"`
		}{Warnings: warnings, Map: m}, nil

	case ".lsd":
		s, warnings, err := lsd.Load(path, &lsd.Options{Encoding: rtpEncoding})
		if err != nil {
			return nil, err
		}
		return struct {
			Warnings []string    `json:"warnings,omitempty"`
			Save     interface{} `json:"save"`
		}{Warnings: warnings, Save: s}, nil

	default:
		return nil, fmt.Errorf("unrecognized extension: %s", path)
	}
}

func dumpWorker() {
	defer wg.Done()
	for path := range jobs {
		v, err := dumpOne(path)
		if err != nil {
			dumpErr.Store(path, err)
			continue
		}
		out, err := prettyJSON(v)
		if err != nil {
			dumpErr.Store(path, err)
			continue
		}
		fmt.Printf("=== %s ===\n%s\n", path, out)
	}
}

func collectFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ldb", ".lmt", ".lmu", ".lsd":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

var dumpCmd = &cobra.Command{
	Use:   "dump <path> [path...]",
	Short: "Dump one or more .ldb/.lmt/.lmu/.lsd files (or directories) as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workers, _ := cmd.Flags().GetInt("workers")
		if workers < 1 {
			workers = 1
		}
		rtpIni, _ := cmd.Flags().GetString("rtp-ini")
		enc, err := loadRTPEncoding(rtpIni)
		if err != nil {
			return err
		}
		rtpEncoding = enc

		var allFiles []string
		for _, root := range args {
			files, err := collectFiles(root)
			if err != nil {
				return err
			}
			allFiles = append(allFiles, files...)
		}

		jobs = make(chan string)
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go dumpWorker()
		}
		for _, f := range allFiles {
			jobs <- f
		}
		close(jobs)
		wg.Wait()

		var failed bool
		dumpErr.Range(func(k, v interface{}) bool {
			failed = true
			fmt.Fprintf(os.Stderr, "error dumping %s: %v\n", k, v)
			return true
		})
		if failed {
			return fmt.Errorf("one or more files failed to dump")
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().Int("workers", 4, "number of concurrent dump workers")
	dumpCmd.Flags().String("rtp-ini", "", "path to an RPG_RT.ini to resolve string encoding from, instead of auto-detecting")
	rootCmd.AddCommand(dumpCmd)
}
