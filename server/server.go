package server

import (
	"io"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ustchcl/contractgen/generate"
	"github.com/ustchcl/contractgen/log"
)

// maxArtifactSize bounds request bodies. Compiled artifacts carry bytecode
// and source maps, so they are larger than the abi alone.
const maxArtifactSize = 16 << 20

var contentTypes = map[string]string{
	generate.TargetTypeScript: "application/typescript; charset=utf-8",
	generate.TargetGo:         "text/x-go; charset=utf-8",
}

// Server renders modules for artifacts posted over HTTP.
type Server struct {
	config generate.Config
	router chi.Router
}

var _ http.Handler = (*Server)(nil)

func New(config generate.Config) *Server {
	s := &Server{config: config}
	if s.config.NetworkID == "" {
		s.config.NetworkID = generate.DefaultConfig().NetworkID
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)

	r.Post("/generate/{target}", s.generate)
	r.Get("/base.ts", s.base)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("").Start(r.Context(), "server.Server.generate")
	defer span.End()

	target := chi.URLParam(r, "target")
	span.SetAttributes(attribute.String("target", target))

	emitter, err := generate.NewEmitter(target, s.config)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxArtifactSize))
	if err != nil {
		http.Error(w, "reading artifact: "+err.Error(), http.StatusBadRequest)
		return
	}

	schema, err := generate.ParseSchema(data)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	code, err := emitter.Emit(schema)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Logger().Warn().Err(err).Str("contract", schema.ContractName).Msg("generation failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	log.Logger().Debug().Str("contract", schema.ContractName).Str("target", target).Msg("generated")
	w.Header().Set("Content-Type", contentType(emitter))
	io.WriteString(w, code)
}

func (s *Server) base(w http.ResponseWriter, r *http.Request) {
	networkID := s.config.NetworkID
	if id := r.URL.Query().Get("network"); id != "" {
		networkID = id
	}

	code, err := generate.RenderBase(networkID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypes[generate.TargetTypeScript])
	io.WriteString(w, code)
}

func contentType(e generate.Emitter) string {
	if _, ok := e.(*generate.GoEmitter); ok {
		return contentTypes[generate.TargetGo]
	}
	return contentTypes[generate.TargetTypeScript]
}
