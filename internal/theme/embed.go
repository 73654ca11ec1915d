package theme

import (
	"embed"
)

//go:embed assets/face.svg assets/window.css
var assets embed.FS

// WindowClass is the CSS class set on the clock window.
const WindowClass = "glassyclock"

// FaceSVG returns the face image drawn under the hands.
func FaceSVG() []byte {
	data, err := assets.ReadFile("assets/face.svg")
	if err != nil {
		// embedded at build time
		panic(err)
	}
	return data
}

// WindowCSS returns the stylesheet applied to the clock window.
func WindowCSS() string {
	data, err := assets.ReadFile("assets/window.css")
	if err != nil {
		panic(err)
	}
	return string(data)
}
