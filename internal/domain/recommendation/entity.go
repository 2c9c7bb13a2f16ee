package recommendation

// Kind distinguishes the two result types the search provider returns.
type Kind string

const (
	KindPlaylist Kind = "playlist"
	KindVideo    Kind = "video"
)

// Item is a single transient search result. Items are never persisted
// unless the user promotes one to a saved course.
type Item struct {
	ExternalID   string
	Kind         Kind
	Title        string
	ThumbnailURL string
	CanonicalURL string
}

// Buckets holds the two named result groups. Order within a bucket is
// strictly insertion order: skill iteration order, then provider response
// order. Index 0 is the best pick. Duplicate external ids across skills are
// preserved on purpose.
type Buckets struct {
	Playlists []Item
	Videos    []Item
}

func (b Buckets) Empty() bool {
	return len(b.Playlists) == 0 && len(b.Videos) == 0
}

// PreviewCount is how many items of a bucket are visible before the user
// reveals the rest.
const PreviewCount = 2

// Projection splits a bucket into the always-visible preview and the
// initially hidden remainder.
type Projection struct {
	Visible    []Item
	Revealable []Item
}

func Project(items []Item) Projection {
	if len(items) <= PreviewCount {
		return Projection{Visible: items}
	}
	return Projection{Visible: items[:PreviewCount], Revealable: items[PreviewCount:]}
}

// Disclosure is the per-bucket show-more flag. Toggling strictly alternates
// between hidden and shown.
type Disclosure struct {
	expanded bool
}

func (d *Disclosure) Toggle() bool {
	d.expanded = !d.expanded
	return d.expanded
}

func (d *Disclosure) Expanded() bool {
	return d.expanded
}
