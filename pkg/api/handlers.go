package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/flierkit/pkg/buildinfo"
	"github.com/matzehuels/flierkit/pkg/core/complexity"
	"github.com/matzehuels/flierkit/pkg/core/rules"
	"github.com/matzehuels/flierkit/pkg/core/zone"
	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
	"github.com/matzehuels/flierkit/pkg/httputil"
	"github.com/matzehuels/flierkit/pkg/i18n"
	"github.com/matzehuels/flierkit/pkg/integrations"
	flierio "github.com/matzehuels/flierkit/pkg/io"
	"github.com/matzehuels/flierkit/pkg/pipeline"
	"github.com/matzehuels/flierkit/pkg/render"
)

// =============================================================================
// Response bodies
// =============================================================================

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type layoutResponse struct {
	Layout    *flier.Layout     `json:"layout"`
	Decisions []rules.Decision  `json:"decisions"`
	Artifacts map[string]string `json:"artifacts,omitempty"`
	Cached    bool              `json:"cached"`
}

type batchRequest struct {
	Requests []*flier.Request `json:"requests"`
}

type batchResponse struct {
	Layouts []layoutResponse `json:"layouts"`
}

type analyzeRequest struct {
	Background flier.Background `json:"background"`
}

type analyzeResponse struct {
	Profile complexity.Profile `json:"profile"`
	Zones   []zone.Zone        `json:"zones"`
}

type zoneInfo struct {
	Zone   zone.Zone   `json:"zone"`
	Anchor zone.Anchor `json:"anchor"`
}

type zonesResponse struct {
	Tier  complexity.Tier `json:"tier"`
	Zones []zoneInfo      `json:"zones"`
}

type translationsResponse struct {
	Category i18n.Category `json:"category"`
	Entries  []i18n.Entry  `json:"entries"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req flier.Request
	if err := decodeRequest(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.pipelineOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	comp, hit, err := s.runner.ComposeWithCacheInfo(r.Context(), &req, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := layoutResponse{Layout: comp.Layout, Decisions: comp.Rules.Decisions, Cached: hit}

	if len(opts.Formats) > 0 {
		artifacts, err := s.runner.Render(r.Context(), comp.Layout, opts)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.Artifacts = make(map[string]string, len(artifacts))
		for format, data := range artifacts {
			resp.Artifacts[format] = string(data)
		}
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleLayoutBatch(w http.ResponseWriter, r *http.Request) {
	var body batchRequest
	if err := httputil.DecodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(body.Requests) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "requests must not be empty"))
		return
	}
	for i, req := range body.Requests {
		if req == nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "requests[%d] is null", i))
			return
		}
		if err := flierio.ValidateRequest(req); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	opts, err := s.pipelineOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	comps, err := s.runner.ComposeBatch(r.Context(), body.Requests, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := batchResponse{Layouts: make([]layoutResponse, len(comps))}
	for i, c := range comps {
		resp.Layouts[i] = layoutResponse{Layout: c.Layout, Decisions: c.Rules.Decisions}
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var body analyzeRequest
	if err := httputil.DecodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	profile := complexity.AnalyzeDescriptor(body.Background)
	s.writeJSON(w, r, http.StatusOK, analyzeResponse{
		Profile: profile,
		Zones:   zone.SafeZones(profile.Tier),
	})
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	tier, ok := complexity.ParseTier(chi.URLParam(r, "tier"))
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput,
			"unknown tier %q (must be one of: low, medium, high)", chi.URLParam(r, "tier")))
		return
	}
	zones := zone.SafeZones(tier)
	resp := zonesResponse{Tier: tier, Zones: make([]zoneInfo, len(zones))}
	for i, z := range zones {
		resp.Zones[i] = zoneInfo{Zone: z, Anchor: zone.AnchorFor(z)}
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req flier.Request
	if err := decodeRequest(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.pipelineOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = nil
	opts.Fallback = s.opts.Fallback
	if v := r.URL.Query().Get("fallback"); v != "" {
		opts.Fallback, err = strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "fallback: %q is not a boolean", v))
			return
		}
	}

	gen, err := s.runner.Generate(r.Context(), &req, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, gen)
}

func (s *Server) handleTranslations(w http.ResponseWriter, r *http.Request) {
	category, err := i18n.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, translationsResponse{
		Category: category,
		Entries:  s.runner.Translator.Entries(category),
	})
}

// =============================================================================
// Helpers
// =============================================================================

// decodeRequest decodes and validates a flyer request body.
func decodeRequest(r *http.Request, req *flier.Request) error {
	if err := httputil.DecodeJSON(r, req); err != nil {
		return err
	}
	return flierio.ValidateRequest(req)
}

// pipelineOptions reads format, width and refresh from the query string.
// Formats stay empty unless requested.
func (s *Server) pipelineOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{ContainerWidth: s.opts.ContainerWidth}

	if v := q.Get("format"); v != "" {
		opts.Formats = strings.Split(v, ",")
		if err := render.ValidateFormats(opts.Formats); err != nil {
			return opts, err
		}
	}
	if v := q.Get("width"); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil || w <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidLayoutParameter, "width: %q is not a positive number", v)
		}
		opts.ContainerWidth = w
	}
	if v := q.Get("refresh"); v != "" {
		refresh, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "refresh: %q is not a boolean", v)
		}
		opts.Refresh = refresh
	}
	return opts, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := httputil.WriteJSON(w, status, v); err != nil {
		s.logger.Warn("write response", "error", err, "request_id", integrations.RequestID(r.Context()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := integrations.RequestID(r.Context())
	status := httputil.WriteError(w, reqID, err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", reqID)
		return
	}
	s.logger.Debug("request rejected", "error", err, "status", status, "request_id", reqID)
}
