package annotate

// Tags splits a tag column into its primary tag and the ordered remainder.
type Tags struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary"`
}

// Characters buckets the characters appearing in an episode by relevance.
type Characters struct {
	Main  []string `json:"main"`
	Side  []string `json:"side"`
	Extra []string `json:"extra"`
}

// Episode is the fully typed record produced for one input row. Field order is
// the JSON key order of the output document.
type Episode struct {
	ID            string     `json:"id"`
	Importance    Scalar     `json:"importance"`
	Chronological int        `json:"chronological"`
	Series        string     `json:"series,omitempty"`
	Release       Scalar     `json:"release"`
	Number        Scalar     `json:"number"`
	Title         Scalar     `json:"title"`
	Arc           Scalar     `json:"arc"`
	Phase         Scalar     `json:"phase"`
	Tags          Tags       `json:"tags"`
	Characters    Characters `json:"characters"`
	Recommended   []string   `json:"recommended"`
	Relevance     []string   `json:"relevance"`
}

// NewEpisode returns the field template with every default applied.
func NewEpisode() Episode {
	return Episode{
		Importance:  String(""),
		Release:     String(""),
		Number:      String(""),
		Title:       String(""),
		Arc:         String(""),
		Phase:       Int(0),
		Tags:        Tags{Secondary: []string{}},
		Characters:  Characters{Main: []string{}, Side: []string{}, Extra: []string{}},
		Recommended: []string{},
		Relevance:   []string{},
	}
}

// Row is one input record keyed by column name.
type Row map[string]string

// Recognized input columns.
const (
	ColumnID            = "id"
	ColumnImportance    = "importance"
	ColumnChronological = "chronological"
	ColumnSeries        = "series"
	ColumnRelease       = "release"
	ColumnNumber        = "number"
	ColumnTitle         = "title"
	ColumnName          = "name"
	ColumnArc           = "arc"
	ColumnPhase         = "phase"
	ColumnTags          = "tags"
	ColumnCharacters    = "characters"
	ColumnRecommended   = "recommended"
	ColumnRelevance     = "relevance"
)
