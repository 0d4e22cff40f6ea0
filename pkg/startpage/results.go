package startpage

// Result is one entry of a results page. The concrete type depends on the
// searched kind.
type Result interface {
	Kind() Kind
}

type WebResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	DisplayURL  string `json:"display_url"`
}

func (WebResult) Kind() Kind { return KindWeb }

type ImageResult struct {
	ImageURL  string `json:"image_url"`
	SourceURL string `json:"source_url"`
	Title     string `json:"title"`
}

func (ImageResult) Kind() Kind { return KindImages }

type VideoResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

func (VideoResult) Kind() Kind { return KindVideos }

type NewsResult struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Description   string `json:"description"`
	Source        string `json:"source"`
	PublishedDate string `json:"published_date"`
}

func (NewsResult) Kind() Kind { return KindNews }

// Place data sources
const (
	SourceLDJSON = "ld+json"
	SourceHTML   = "html"
)

type PlaceResult struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	URL         string  `json:"url"`
	Rating      *string `json:"rating"`
	ReviewCount *int    `json:"review_count"`
	Latitude    *string `json:"latitude"`
	Longitude   *string `json:"longitude"`
	DataSource  string  `json:"data_source"`
}

func (PlaceResult) Kind() Kind { return KindPlaces }

// Response is a parsed results page
type Response struct {
	Results      []Result `json:"results"`
	TotalResults *int     `json:"total_results"`
	HasNextPage  bool     `json:"has_next_page"`
}

// ResultsOf returns the results of r that have concrete type T.
func ResultsOf[T Result](r *Response) []T {
	if r == nil {
		return nil
	}
	out := make([]T, 0, len(r.Results))
	for _, res := range r.Results {
		if v, ok := res.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

type KnowledgePanel struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Facts       map[string]string `json:"facts"`
	Source      string            `json:"source"`
}

// InstantAnswers holds the direct answer and knowledge panel found on a web
// results page. Either may be nil.
type InstantAnswers struct {
	InstantAnswer  *string         `json:"instant_answer"`
	KnowledgePanel *KnowledgePanel `json:"knowledge_panel"`
}
