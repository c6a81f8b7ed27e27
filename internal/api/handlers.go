package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/drawkit/drawkit/pkg/buildinfo"
	"github.com/drawkit/drawkit/pkg/drw"
	apperrors "github.com/drawkit/drawkit/pkg/errors"
	"github.com/drawkit/drawkit/pkg/export"
	"github.com/drawkit/drawkit/pkg/geom"
	"github.com/drawkit/drawkit/pkg/shape"
)

// maxBodyBytes caps document uploads at 1 MiB.
const maxBodyBytes = 1 << 20

// =============================================================================
// Payloads
// =============================================================================

type pointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type boxPayload struct {
	TopLeft     pointPayload `json:"top_left"`
	BottomRight pointPayload `json:"bottom_right"`
}

type statsPayload struct {
	Lines  int         `json:"lines"`
	Rects  int         `json:"rects"`
	Groups int         `json:"groups"`
	Depth  int         `json:"depth"`
	Extent *boxPayload `json:"extent,omitempty"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

type validatePayload struct {
	Valid bool          `json:"valid"`
	Stats *statsPayload `json:"stats,omitempty"`
	Error *errorPayload `json:"error,omitempty"`
}

type hitPayload struct {
	Path   string      `json:"path"`
	Kind   string      `json:"kind"`
	Bounds *boxPayload `json:"bounds,omitempty"`
}

type hitTestPayload struct {
	Point pointPayload `json:"point"`
	Hits  []hitPayload `json:"hits"`
}

func toBoxPayload(b geom.Box) *boxPayload {
	if !b.InUse {
		return nil
	}
	return &boxPayload{
		TopLeft:     pointPayload{X: b.TopLeft.X, Y: b.TopLeft.Y},
		BottomRight: pointPayload{X: b.BottomRight.X, Y: b.BottomRight.Y},
	}
}

func toStatsPayload(st shape.Stats) *statsPayload {
	return &statsPayload{
		Lines:  st.Lines,
		Rects:  st.Rects,
		Groups: st.Groups,
		Depth:  st.Depth,
		Extent: toBoxPayload(st.Extent),
	}
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"date":    buildinfo.Date,
	})
}

// handleValidate reports validity in the body rather than the status code:
// an invalid document is a successful validation with valid=false.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	seq, err := drw.Unmarshal(body)
	if err != nil {
		s.writeJSON(w, http.StatusOK, validatePayload{Valid: false, Error: toErrorPayload(err)})
		return
	}

	s.writeJSON(w, http.StatusOK, validatePayload{Valid: true, Stats: toStatsPayload(seq.Stats())})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	seq, err := s.readDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toStatsPayload(seq.Stats()))
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	to := r.URL.Query().Get("to")
	if to != "xml" && to != "drw" {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidFormat, "to must be 'xml' or 'drw', got %q", to))
		return
	}

	seq, err := s.readDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	switch to {
	case "xml":
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusOK)
		w.Write(export.XML(seq))
	case "drw":
		data, err := drw.Marshal(seq)
		if err != nil {
			s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "serialize document"))
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

func (s *Server) handleHitTest(w http.ResponseWriter, r *http.Request) {
	x, err := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid x coordinate %q", r.URL.Query().Get("x")))
		return
	}
	y, err := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid y coordinate %q", r.URL.Query().Get("y")))
		return
	}

	seq, err := s.readDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	p := geom.Point{X: x, Y: y}
	resp := hitTestPayload{Point: pointPayload{X: x, Y: y}, Hits: []hitPayload{}}
	for i, sh := range seq {
		if sh.Contains(p) {
			resp.Hits = append(resp.Hits, hitPayload{
				Path:   strconv.Itoa(i),
				Kind:   sh.Kind().String(),
				Bounds: toBoxPayload(sh.Bounds()),
			})
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Plumbing
// =============================================================================

// readBody reads the request body under the size cap.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read body")
	}
	return body, nil
}

// readDocument reads and parses the canonical text body.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (shape.Seq, error) {
	body, err := readBody(w, r)
	if err != nil {
		return nil, err
	}
	seq, err := drw.Unmarshal(body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeParse, err, "parse document")
	}
	return seq, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("encode response: %v", err)
	}
}

// writeError maps an error code to an HTTP status and writes the error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusForCode(apperrors.GetCode(err)), map[string]*errorPayload{"error": toErrorPayload(err)})
}

// toErrorPayload extracts the code, user message, and parse line when present.
func toErrorPayload(err error) *errorPayload {
	p := &errorPayload{
		Code:    string(apperrors.GetCode(err)),
		Message: apperrors.UserMessage(err),
	}
	var pe *drw.ParseError
	if errors.As(err, &pe) {
		p.Code = string(apperrors.ErrCodeParse)
		p.Line = pe.Line
	}
	return p
}

func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeParse, apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidColour:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeShapeNotFound, apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
