package logging

import "strings"

// FormatSubject builds the episode/source subject string used in console output.
func FormatSubject(episodeID, source string) string {
	episodeID = strings.TrimSpace(episodeID)
	source = strings.TrimSpace(source)
	switch {
	case episodeID != "" && source != "":
		return "Episode " + episodeID + " (" + source + ")"
	case episodeID != "":
		return "Episode " + episodeID
	default:
		return source
	}
}
