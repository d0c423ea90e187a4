package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/pixhold/internal/logger"
	"github.com/Faultbox/pixhold/pkg/hexcolor"
	"github.com/Faultbox/pixhold/pkg/png"
)

// Request errors surfaced as 400 responses.
var (
	ErrBadPath = errors.New("expected /{width}x{height}[/{color}][.png]")
	ErrBadSize = errors.New("invalid size")
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	width, height, fill, err := s.parseRequest(r)
	if err != nil {
		logger.Debug("bad request",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if width > s.maxWidth() || height > s.maxHeight() {
		http.Error(w,
			fmt.Sprintf("size %dx%d exceeds limit %dx%d", width, height, s.maxWidth(), s.maxHeight()),
			http.StatusBadRequest)
		return
	}

	data, err := png.Encode(width, height, fill)
	if errors.Is(err, png.ErrInvalidDimensions) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Error("encode failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if r.Method == http.MethodHead {
		return
	}
	w.Write(data)

	logger.Debug("served",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)))
}

// parseRequest resolves width, height and fill color from either the path
// form /300x200/ff0000.png (color optional, "300" alone means a square) or
// the query form /?w=300&h=200&c=ff0000. Missing values fall back to the
// configured defaults.
func (s *Server) parseRequest(r *http.Request) (int, int, png.RGB, error) {
	img := s.cfg.Image
	width, height := img.DefaultWidth, img.DefaultHeight
	fillText := img.DefaultColor

	path := strings.Trim(strings.TrimSuffix(r.URL.Path, ".png"), "/")
	if path != "" {
		parts := strings.Split(path, "/")
		if len(parts) > 2 {
			return 0, 0, png.RGB{}, fmt.Errorf("%w: %q", ErrBadPath, r.URL.Path)
		}

		var err error
		width, height, err = parseSize(parts[0])
		if err != nil {
			return 0, 0, png.RGB{}, err
		}
		if len(parts) == 2 {
			fillText = parts[1]
		}
	} else {
		q := r.URL.Query()
		if v := q.Get("w"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return 0, 0, png.RGB{}, fmt.Errorf("%w: w=%q", ErrBadSize, v)
			}
			width = n
		}
		if v := q.Get("h"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return 0, 0, png.RGB{}, fmt.Errorf("%w: h=%q", ErrBadSize, v)
			}
			height = n
		}
		if v := q.Get("c"); v != "" {
			fillText = v
		}
	}

	fill, err := hexcolor.Parse(fillText)
	if err != nil {
		return 0, 0, png.RGB{}, err
	}
	return width, height, fill, nil
}

// parseSize parses "300x200" into width and height. A bare number is a
// square.
func parseSize(text string) (int, int, error) {
	before, after, found := strings.Cut(text, "x")
	if !found {
		n, err := strconv.Atoi(text)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, text)
		}
		return n, n, nil
	}

	w, err := strconv.Atoi(before)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, text)
	}
	h, err := strconv.Atoi(after)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, text)
	}
	return w, h, nil
}
