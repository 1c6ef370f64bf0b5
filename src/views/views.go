package views

import (
	"embed"
	"html/template"
	"strconv"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Names of the page templates registered by Load.
const (
	GridTemplate   = "grid.html"
	DetailTemplate = "detail.html"
	FormTemplate   = "form.html"
)

// Load parses the embedded page templates.
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"datetime": formatTime,
		"actor":    formatActor,
	}).ParseFS(templateFS, "templates/*.html")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatActor(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}

type Crumb struct {
	Label string
	URL   string
}

type Layout struct {
	Title  string
	Crumbs []Crumb
}

// Row is one line of a grid listing.
type Row struct {
	ID          int
	Name        string
	CreatedAt   time.Time
	CreatedBy   *int
	UpdatedAt   time.Time
	UpdatedBy   *int
	ViewURL     string
	UpdateURL   string
	DeleteURL   string
	ChildrenURL string
}

type Grid struct {
	Layout
	Entity        string
	CreateURL     string
	CreateLabel   string
	ChildrenLabel string
	FilterAction  string
	FilterName    string
	ParentParam   string
	ParentID      int
	Rows          []Row
	TotalCount    int64
	Page          int
	PageCount     int
	PrevURL       string
	NextURL       string
}

type Field struct {
	Label string
	Value string
}

type Detail struct {
	Layout
	Fields        []Field
	UpdateURL     string
	DeleteURL     string
	ChildrenURL   string
	ChildrenLabel string
}

// Form is a create or update form. ParentName and ParentValue describe the
// optional parent selector shown on update forms.
type Form struct {
	Layout
	Action      string
	Name        string
	ParentName  string
	ParentLabel string
	ParentValue int
	Errors      map[string]string
	CancelURL   string
}
