// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	assetfs "github.com/elazarl/go-bindata-assetfs"
	"github.com/spf13/cobra"
)

// viewerHTML is the single static page the serve subcommand hosts: it fetches
// /dump.json (a JSON document served from the working directory) and shows
// it pretty-printed in a <pre> block.
const viewerHTML = `<!doctype html>
<html><head><meta charset="utf-8"><title>lcfdump viewer</title></head>
<body>
<h1>lcfdump</h1>
<pre id="tree">loading dump.json...</pre>
<script>
fetch('dump.json').then(r => r.json()).then(j => {
  document.getElementById('tree').textContent = JSON.stringify(j, null, 2);
}).catch(e => {
  document.getElementById('tree').textContent = 'no dump.json next to this server: ' + e;
});
</script>
</body></html>
`

type staticAsset struct {
	data    []byte
	modTime time.Time
}

var viewerAssets = map[string]staticAsset{
	"index.html": {data: []byte(viewerHTML), modTime: time.Unix(0, 0)},
}

func viewerAsset(path string) ([]byte, error) {
	a, ok := viewerAssets[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return a.data, nil
}

func viewerAssetDir(path string) ([]string, error) {
	if path != "" {
		return nil, os.ErrNotExist
	}
	names := make([]string, 0, len(viewerAssets))
	for name := range viewerAssets {
		names = append(names, name)
	}
	return names, nil
}

func viewerAssetInfo(path string) (os.FileInfo, error) {
	a, ok := viewerAssets[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return staticFileInfo{name: path, size: int64(len(a.data)), modTime: a.modTime}, nil
}

// staticFileInfo is the minimal os.FileInfo assetfs.AssetFS needs to serve a
// hand-authored asset table (in place of the usual go-bindata-generated one).
type staticFileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (fi staticFileInfo) Name() string       { return fi.name }
func (fi staticFileInfo) Size() int64        { return fi.size }
func (fi staticFileInfo) Mode() os.FileMode  { return 0o444 }
func (fi staticFileInfo) ModTime() time.Time { return fi.modTime }
func (fi staticFileInfo) IsDir() bool        { return false }
func (fi staticFileInfo) Sys() interface{}   { return nil }

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a small static viewer over a dumped JSON tree",
	Long: "Starts an HTTP server hosting a single-page viewer that fetches " +
		"dump.json from the working directory and shows it pretty-printed. " +
		"dump.json must hold a single JSON document, e.g. one file's tree " +
		"from 'lcfdump dump' without its '=== path ===' header line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		fs := &assetfs.AssetFS{
			Asset:     viewerAsset,
			AssetDir:  viewerAssetDir,
			AssetInfo: viewerAssetInfo,
		}
		mux := http.NewServeMux()
		mux.Handle("/", http.FileServer(fs))
		mux.Handle("/dump.json", http.FileServer(http.Dir(".")))

		fmt.Printf("serving lcfdump viewer on %s\n", addr)
		return http.ListenAndServe(addr, mux)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}
