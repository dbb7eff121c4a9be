// Package web renders the public portfolio page and the admin console.
package web

import (
	"bytes"
	"context"
	"embed"
	"encoding/xml"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// recentMessages caps the dashboard message table.
const recentMessages = 20

// Lister is satisfied by the content services.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Sources feed the rendered pages.
type Sources struct {
	Skills         Lister[models.Skill]
	Projects       Lister[models.Project]
	Education      Lister[models.Education]
	Experience     Lister[models.Experience]
	Hackathons     Lister[models.Hackathon]
	Certifications Lister[models.Certification]
	Messages       Lister[models.ContactMessage]
}

// Site serves HTML pages and crawler files.
type Site struct {
	sources   Sources
	baseURL   string
	ownerName string
	pages     map[string]*template.Template
}

type Opt func(*Site)

func WithBaseURL(u string) Opt {
	return func(s *Site) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

func WithOwnerName(name string) Opt {
	return func(s *Site) {
		s.ownerName = name
	}
}

// New parses the embedded templates.
func New(sources Sources, opts ...Opt) (*Site, error) {
	s := &Site{
		sources:   sources,
		baseURL:   "http://localhost:8080",
		ownerName: "Mann Soni",
		pages:     make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(s)
	}

	funcs := template.FuncMap{
		"year": func(t time.Time) int { return t.Year() },
		"date": func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
	}
	for _, page := range []string{"home.html", "login.html", "dashboard.html", "resource.html"} {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/adminnav.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		s.pages[page] = t
	}
	return s, nil
}

// Static serves the embedded assets, mount it under /static/.
func (s *Site) Static() http.Handler {
	sub, _ := fs.Sub(staticFS, "static")
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

type homeData struct {
	Owner          string
	Year           int
	Skills         map[string][]models.Skill
	Categories     []string
	Projects       []models.Project
	Education      []models.Education
	Experience     []models.Experience
	Hackathons     []models.Hackathon
	Certifications []models.Certification
}

// Home renders the public page. Only featured projects are shown.
func (s *Site) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := homeData{Owner: s.ownerName, Year: time.Now().Year()}

		var skills []models.Skill
		var projects []models.Project

		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() (err error) { skills, err = s.sources.Skills.List(ctx); return })
		g.Go(func() (err error) { projects, err = s.sources.Projects.List(ctx); return })
		g.Go(func() (err error) { data.Education, err = s.sources.Education.List(ctx); return })
		g.Go(func() (err error) { data.Experience, err = s.sources.Experience.List(ctx); return })
		g.Go(func() (err error) { data.Hackathons, err = s.sources.Hackathons.List(ctx); return })
		g.Go(func() (err error) { data.Certifications, err = s.sources.Certifications.List(ctx); return })

		if err := g.Wait(); err != nil {
			logger.Log.Errorw("failed to load home page content", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		data.Skills, data.Categories = groupSkills(skills)
		for _, p := range projects {
			if p.Featured {
				data.Projects = append(data.Projects, p)
			}
		}

		s.render(w, "home.html", data)
	}
}

// groupSkills keeps category order of first appearance.
func groupSkills(skills []models.Skill) (map[string][]models.Skill, []string) {
	groups := make(map[string][]models.Skill)
	var order []string
	for _, sk := range skills {
		if _, ok := groups[sk.Category]; !ok {
			order = append(order, sk.Category)
		}
		groups[sk.Category] = append(groups[sk.Category], sk)
	}
	return groups, order
}

// Login renders the admin login form.
func (s *Site) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, "login.html", map[string]any{"Owner": s.ownerName})
	}
}

type dashboardData struct {
	Owner          string
	Resources      []Resource
	MessagesCount  int
	ProjectsCount  int
	SkillsCount    int
	RecentMessages []models.ContactMessage
}

// Dashboard renders counters and the latest contact messages.
func (s *Site) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			messages []models.ContactMessage
			projects []models.Project
			skills   []models.Skill
		)

		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() (err error) { messages, err = s.sources.Messages.List(ctx); return })
		g.Go(func() (err error) { projects, err = s.sources.Projects.List(ctx); return })
		g.Go(func() (err error) { skills, err = s.sources.Skills.List(ctx); return })

		if err := g.Wait(); err != nil {
			logger.Log.Errorw("failed to load dashboard", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		data := dashboardData{
			Owner:          s.ownerName,
			Resources:      Resources,
			MessagesCount:  len(messages),
			ProjectsCount:  len(projects),
			SkillsCount:    len(skills),
			RecentMessages: messages,
		}
		if len(data.RecentMessages) > recentMessages {
			data.RecentMessages = data.RecentMessages[:recentMessages]
		}

		s.render(w, "dashboard.html", data)
	}
}

// ResourcePage renders the editor of the resource named by the {resource} URL parameter.
func (s *Site) ResourcePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := LookupResource(chi.URLParam(r, "resource"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		s.render(w, "resource.html", map[string]any{
			"Owner":     s.ownerName,
			"Resources": Resources,
			"Resource":  res,
		})
	}
}

// Robots keeps crawlers out of the admin console and its API.
func (s *Site) Robots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/admin/\n\nSitemap: %s/sitemap.xml\n", s.baseURL)
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists the public page.
func (s *Site) Sitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set := urlSet{
			XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs: []sitemapURL{{
				Loc:        s.baseURL,
				LastMod:    time.Now().UTC().Format("2006-01-02"),
				ChangeFreq: "weekly",
				Priority:   "1.0",
			}},
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write([]byte(xml.Header))
		if err := xml.NewEncoder(w).Encode(set); err != nil {
			logger.Log.Errorw("failed to encode sitemap", "error", err)
		}
	}
}

// render buffers the page so template errors still produce a clean 500.
func (s *Site) render(w http.ResponseWriter, page string, data any) {
	var buf bytes.Buffer
	if err := s.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Log.Errorw("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
