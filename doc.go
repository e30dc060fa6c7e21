// Package genicon writes the placeholder application icon used by the
// remote desktop Tauri shell.
//
// # Quick Start
//
//	paths, err := genicon.Generate("./modules/remote-desktop")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(paths.SVG) // modules/remote-desktop/src-tauri/app-icon.svg
//
// Generate creates the src-tauri directory when it is missing and always
// overwrites app-icon.svg with [SVGTemplate]. Nothing else is touched.
//
// # Next Step
//
// The SVG is a source image only. Platform icon sets are produced by the
// Tauri CLI, run from the Tauri project:
//
//	pnpm tauri icon app-icon.svg
//
// [Paths.PNG] is where a rasterized icon belongs. Generate computes it but
// never writes it.
package genicon
