// Command sheetserv serves a directory of generated spritesheets over HTTP:
// the sheet PNGs, the animated GIF previews, and an index page with inline
// thumbnails.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	_ "golang.org/x/net/trace"

	"badc0de.net/pkg/go-spritesheet/manifest"
	"badc0de.net/pkg/go-spritesheet/paths"
	"badc0de.net/pkg/go-spritesheet/web"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for sheetserv")

	sheetsDir    string
	manifestPath string
)

func setupAssetPathFlags() {
	paths.SetupDirPathFlag("spritesheets", "sheets_dir", &sheetsDir)
	paths.SetupFilePathFlag("animations.yaml", "manifest_path", &manifestPath)
}

func main() {
	setupAssetPathFlags()
	flagutil.Parse()

	m, err := manifest.Load(manifestPath)
	if err != nil {
		glog.Errorf("could not load manifest, using built-in animations: %v", err)
		m = manifest.Default()
	}
	if sheetsDir == "" {
		glog.Warningf("no spritesheets directory found; pass -sheets_dir")
	}

	r := mux.NewRouter()
	web.NewHandler(m, sheetsDir).RegisterRoutes(r)

	glog.Infof("sheetserv listening on %s", *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.CombinedLoggingHandler(os.Stdout, r)))
}
