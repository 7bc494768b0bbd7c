package sync

import (
	"github.com/streamhaven/catalogd/pkg/catalog"
)

const (
	videoTypeTrailer = "Trailer"
	videoSiteYouTube = "YouTube"
)

// SelectTrailer picks the single trailer key to persist out of an unordered
// candidate list: first a YouTube trailer in the preferred language, then any
// YouTube trailer, otherwise nil. Ties go to provider list order.
func SelectTrailer(videos []catalog.Video, preferredLanguage string) *string {
	var fallback *string
	for i := range videos {
		v := videos[i]
		if v.Type != videoTypeTrailer || v.Site != videoSiteYouTube {
			continue
		}
		if v.Language == preferredLanguage {
			return &videos[i].Key
		}
		if fallback == nil {
			fallback = &videos[i].Key
		}
	}

	return fallback
}
