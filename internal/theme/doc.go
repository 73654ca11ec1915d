// Package theme bundles the clock's static assets: the face image drawn
// under the hands and the CSS that keeps the window background transparent.
package theme
