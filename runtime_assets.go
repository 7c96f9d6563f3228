package certform

import (
	"io/fs"

	vanilla "github.com/goliatone/go-certform/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the stylesheet and live-binding script referenced by
// the rendered form.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(certform.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
