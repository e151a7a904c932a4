// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import (
	"strings"
)

// ImageSize is a TMDB image size segment.
//
// Supported sizes:
//
//	Posters/logos: w92, w154, w185, w342, w500, w780, original
//	Backdrops:     w300, w780, w1280, original
type ImageSize string

const (
	// ImageSizeDefault is used for posters and company logos.
	ImageSizeDefault ImageSize = "w500"
	// ImageSizeBackdrop is used for backdrops.
	ImageSizeBackdrop ImageSize = "w1280"
)

// BuildImageURL turns a relative TMDB image path into an absolute CDN URL:
// {baseURL}/t/p/{size}{path}. A nil or empty path yields nil so callers never
// produce an empty string or a URL without a file.
//
//	BuildImageURL("https://image.tmdb.org", &p, ImageSizeDefault)
//	// https://image.tmdb.org/t/p/w500/abc.jpg
func BuildImageURL(baseURL string, path *string, size ImageSize) *string {
	if path == nil || *path == "" {
		return nil
	}
	if size == "" {
		size = ImageSizeDefault
	}

	p := *path
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	u := strings.TrimSuffix(baseURL, "/") + "/t/p/" + string(size) + p
	return &u
}
