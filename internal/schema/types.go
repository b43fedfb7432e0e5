package schema

// Typed JSON-LD structures for the types the assembler emits. Optional
// fields are omitempty; the recursive pruning pass removes anything that
// still serializes empty (nested objects whose members all emptied out).

// Document is the root JSON-LD object.
type Document struct {
	Context       string        `json:"@context"`
	Type          []string      `json:"@type"`
	Headline      string        `json:"headline,omitempty"`
	Name          string        `json:"name,omitempty"`
	Description   string        `json:"description,omitempty"`
	URL           string        `json:"url,omitempty"`
	DatePublished string        `json:"datePublished,omitempty"`
	DateModified  string        `json:"dateModified,omitempty"`
	InLanguage    string        `json:"inLanguage,omitempty"`
	Author        *PersonRef    `json:"author,omitempty"`
	Publisher     *Organization `json:"publisher,omitempty"`
	Image         *ImageObject  `json:"image,omitempty"`
	About         []EntityRef   `json:"about,omitempty"`
	Mentions      []EntityRef   `json:"mentions,omitempty"`
	Teaches       []string      `json:"teaches,omitempty"`
	IsPartOf      *WebSite      `json:"isPartOf,omitempty"`
	Step          []HowToStep   `json:"step,omitempty"`
	Keywords      string        `json:"keywords,omitempty"`
	ArticleBody   string        `json:"articleBody,omitempty"`
}

// PersonRef is an author reference with a deterministic @id.
type PersonRef struct {
	Type string `json:"@type"`
	ID   string `json:"@id,omitempty"`
	Name string `json:"name"`
}

// Organization is a publisher reference.
type Organization struct {
	Type string       `json:"@type"`
	ID   string       `json:"@id,omitempty"`
	Name string       `json:"name"`
	Logo *ImageObject `json:"logo,omitempty"`
}

// ImageObject wraps an image URL.
type ImageObject struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// EntityRef is an about/mentions entry.
type EntityRef struct {
	Type   string   `json:"@type"`
	Name   string   `json:"name"`
	SameAs []string `json:"sameAs,omitempty"`
}

// WebSite is the isPartOf container.
type WebSite struct {
	Type string `json:"@type"`
	ID   string `json:"@id,omitempty"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}
