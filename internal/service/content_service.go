package service

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"mathquiz_backend/pkg/logger"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// MaterialService serves markdown study notes from a directory.
type MaterialService struct {
	mu  sync.RWMutex
	dir string
}

func NewMaterialService(dir string) *MaterialService {
	return &MaterialService{dir: dir}
}

func (s *MaterialService) SetDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = dir
}

func (s *MaterialService) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// List returns every material without its body, sorted by slug. A missing
// directory is an empty list.
func (s *MaterialService) List() ([]model.Material, error) {
	entries, err := os.ReadDir(s.Dir())
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Material{}, nil
	}
	if err != nil {
		return nil, util.Internal("read materials directory", err)
	}

	out := make([]model.Material, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		slug := strings.TrimSuffix(e.Name(), ".md")
		if !slugPattern.MatchString(slug) {
			continue
		}
		m, err := s.Get(slug)
		if err != nil {
			logger.Log.Warn("Skipping unreadable material", zap.String("slug", slug), zap.Error(err))
			continue
		}
		m.Markdown = ""
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

func (s *MaterialService) Get(slug string) (*model.Material, error) {
	if !slugPattern.MatchString(slug) {
		return nil, util.ErrMaterialNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.Dir(), slug+".md"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, util.ErrMaterialNotFound
	}
	if err != nil {
		return nil, util.Internal("read material", err)
	}
	text := string(data)
	return &model.Material{Slug: slug, Title: materialTitle(slug, text), Markdown: text}, nil
}

// materialTitle is the first level-one heading, or the slug.
func materialTitle(slug, markdown string) string {
	sc := bufio.NewScanner(strings.NewReader(markdown))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return slug
}

func (s *MaterialService) PDF(slug string) ([]byte, error) {
	m, err := s.Get(slug)
	if err != nil {
		return nil, err
	}
	data, err := RenderMaterialPDF(m.Title, m.Markdown)
	if err != nil {
		return nil, util.Internal("render material pdf", err)
	}
	return data, nil
}

type pdfLine struct {
	Style string
	Size  float64
	Text  string
}

// layoutMarkdown maps markdown lines to font styles. Table separator rows
// are dropped and table cells are joined with two spaces.
func layoutMarkdown(markdown string) []pdfLine {
	var out []pdfLine
	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)
		l := pdfLine{Size: 10, Text: line}
		switch {
		case strings.HasPrefix(line, "### "):
			l.Style, l.Size, l.Text = "B", 11, line[4:]
		case strings.HasPrefix(line, "## "):
			l.Style, l.Size, l.Text = "B", 12, line[3:]
		case strings.HasPrefix(line, "# "):
			l.Style, l.Size, l.Text = "B", 14, line[2:]
		case len(line) > 1 && strings.HasPrefix(line, "*") && strings.HasSuffix(line, "*") && !strings.HasPrefix(line, "**"):
			l.Style, l.Text = "I", line[1:len(line)-1]
		}

		if strings.Count(l.Text, "|") > 2 {
			if isTableSeparator(l.Text) {
				continue
			}
			var cells []string
			for _, c := range strings.Split(l.Text, "|") {
				if c = strings.TrimSpace(c); c != "" {
					cells = append(cells, c)
				}
			}
			l.Text = strings.Join(cells, "  ")
		}
		out = append(out, l)
	}
	return out
}

func isTableSeparator(line string) bool {
	return strings.Trim(line, "|-: ") == ""
}

// RenderMaterialPDF lays markdown out on A4 pages with a title header and a
// page-number footer.
func RenderMaterialPDF(title, markdown string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 15)
		pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, "Page "+strconv.Itoa(pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	for _, l := range layoutMarkdown(markdown) {
		if l.Text == "" {
			pdf.Ln(3)
			continue
		}
		pdf.SetFont("Arial", l.Style, l.Size)
		pdf.MultiCell(0, 5, tr(l.Text), "", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// VideoService reads the video catalog from a YAML file on each call.
type VideoService struct {
	mu   sync.RWMutex
	path string
}

func NewVideoService(path string) *VideoService {
	return &VideoService{path: path}
}

func (s *VideoService) SetPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}

// Catalog returns an empty catalog when the file is missing or malformed.
func (s *VideoService) Catalog() model.VideoCatalog {
	s.mu.RLock()
	path := s.path
	s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Warn("Video catalog not available", zap.String("path", path), zap.Error(err))
		return model.VideoCatalog{}
	}
	var catalog model.VideoCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		logger.Log.Warn("Video catalog is malformed", zap.String("path", path), zap.Error(err))
		return model.VideoCatalog{}
	}
	if catalog == nil {
		catalog = model.VideoCatalog{}
	}
	return catalog
}

func (s *VideoService) Videos(classLevel int, chapter string) []model.Video {
	if videos, ok := s.Catalog()[classLevel][chapter]; ok && videos != nil {
		return videos
	}
	return []model.Video{}
}
