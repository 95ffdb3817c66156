package cadhttp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/errors"
)

// Server exposes a [cad.Session] over HTTP.
type Server struct {
	session cad.Session
	logger  *log.Logger
	router  chi.Router
}

// ServerOption customizes a [Server].
type ServerOption func(*Server)

// WithLogger sets the request logger. Defaults to the package-level logger.
func WithLogger(logger *log.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// NewServer mounts session behind a JSON API.
func NewServer(session cad.Session, opts ...ServerOption) *Server {
	s := &Server{
		session: session,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Route(apiVersion, func(r chi.Router) {
		r.Route("/layers", func(r chi.Router) {
			r.Get("/", s.listLayers)
			r.Post("/", s.createLayer)
			r.Put("/active", s.setActiveLayer)
			r.Delete("/{name}", s.deleteLayer)
			r.Put("/{name}/visibility", s.setLayerVisibility)
			r.Put("/{name}/lock", s.lockLayer)
			r.Put("/{name}/color", s.setLayerColor)
			r.Put("/{name}/linetype", s.setLayerLinetype)
		})

		r.Route("/entities", func(r chi.Router) {
			r.Get("/", s.listObjects)
			r.Post("/line", s.addLine)
			r.Post("/circle", s.addCircle)
			r.Post("/ellipse", s.addEllipse)
			r.Post("/rectangle", s.addRectangle)
			r.Post("/text", s.addText)
			r.Post("/dimension", s.addDimension)
			r.Delete("/{handle}", s.deleteObject)
			r.Post("/{handle}/clone", s.cloneObject)
			r.Post("/{handle}/move", s.moveObject)
			r.Post("/{handle}/scale", s.scaleObject)
			r.Post("/{handle}/rotate", s.rotateObject)
			r.Get("/{handle}/attributes", s.listAttributes)
			r.Put("/{handle}/attributes/{tag}", s.setAttribute)
			r.Delete("/{handle}/attributes/{tag}", s.deleteAttribute)
		})

		r.Route("/blocks", func(r chi.Router) {
			r.Get("/", s.listBlocks)
			r.Post("/references", s.insertBlock)
			r.Post("/import", s.importBlock)
			r.Post("/{name}/export", s.exportBlock)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", s.createGroup)
			r.Get("/{name}", s.groupMembers)
			r.Post("/{name}/members", s.addToGroup)
			r.Post("/{name}/remove", s.removeFromGroup)
		})

		r.Route("/prompts", func(r chi.Router) {
			r.Post("/point", s.promptPoint)
			r.Post("/string", s.promptString)
			r.Post("/int", s.promptInt)
		})

		r.Post("/messages", s.showMessage)

		r.Route("/document", func(r chi.Router) {
			r.Post("/open", s.openDocument)
			r.Post("/save", s.saveDocument)
		})
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// =============================================================================
// Response helpers
// =============================================================================

// statusFor maps structured error codes onto HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidArgument, errors.ErrCodeInvalidColor,
		errors.ErrCodeInvalidAlignment, errors.ErrCodeInvalidName,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeLayerNotFound,
		errors.ErrCodeBlockNotFound, errors.ErrCodeGroupNotFound,
		errors.ErrCodeEntityNotFound, errors.ErrCodeAttributeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeDuplicate, errors.ErrCodeLayerLocked,
		errors.ErrCodeLayerInUse, errors.ErrCodePromptCancelled:
		return http.StatusConflict
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case errors.ErrCodeHostUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	if body == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) respondErr(w http.ResponseWriter, err error) {
	s.respond(w, statusFor(err), newErrorPayload(err))
}

// decode reads a JSON request body into v.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New(errors.ErrCodeInvalidArgument, "malformed request body: %v", err)
	}
	return nil
}

// done finishes a void handler: error payload or 204.
func (s *Server) done(w http.ResponseWriter, err error) {
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

// created finishes an entity-creating handler with the new handle.
func (s *Server) created(w http.ResponseWriter, h cad.Handle, err error) {
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusCreated, handleResponse{Handle: h})
}

// =============================================================================
// Layer handlers
// =============================================================================

func (s *Server) listLayers(w http.ResponseWriter, r *http.Request) {
	layers, err := s.session.Layers(r.Context())
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, layers)
}

func (s *Server) createLayer(w http.ResponseWriter, r *http.Request) {
	var layer cad.Layer
	if err := decode(r, &layer); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.CreateLayer(r.Context(), layer))
}

func (s *Server) deleteLayer(w http.ResponseWriter, r *http.Request) {
	s.done(w, s.session.DeleteLayer(r.Context(), chi.URLParam(r, "name")))
}

func (s *Server) setActiveLayer(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.SetActiveLayer(r.Context(), req.Name))
}

func (s *Server) setLayerVisibility(w http.ResponseWriter, r *http.Request) {
	var req visibilityRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.SetLayerVisibility(r.Context(), chi.URLParam(r, "name"), req.Visible))
}

func (s *Server) lockLayer(w http.ResponseWriter, r *http.Request) {
	var req lockRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.LockLayer(r.Context(), chi.URLParam(r, "name"), req.Locked))
}

func (s *Server) setLayerColor(w http.ResponseWriter, r *http.Request) {
	var req colorRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.SetLayerColor(r.Context(), chi.URLParam(r, "name"), req.Color))
}

func (s *Server) setLayerLinetype(w http.ResponseWriter, r *http.Request) {
	var req linetypeRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.SetLayerLinetype(r.Context(), chi.URLParam(r, "name"), req.Linetype))
}

// =============================================================================
// Entity handlers
// =============================================================================

func (s *Server) listObjects(w http.ResponseWriter, r *http.Request) {
	filter := cad.ObjectFilter{
		Type:  cad.EntityType(r.URL.Query().Get("type")),
		Layer: r.URL.Query().Get("layer"),
		Block: r.URL.Query().Get("block"),
	}
	objects, err := s.session.Objects(r.Context(), filter)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, objects)
}

func (s *Server) addLine(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	h, err := s.session.AddLine(r.Context(), req.Start, req.End)
	s.created(w, h, err)
}

func (s *Server) addCircle(w http.ResponseWriter, r *http.Request) {
	var req circleRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	h, err := s.session.AddCircle(r.Context(), req.Center, req.Radius)
	s.created(w, h, err)
}

func (s *Server) addEllipse(w http.ResponseWriter, r *http.Request) {
	var req ellipseRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	h, err := s.session.AddEllipse(r.Context(), req.Center, req.MajorAxis, req.Ratio)
	s.created(w, h, err)
}

func (s *Server) addRectangle(w http.ResponseWriter, r *http.Request) {
	var req rectangleRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	h, err := s.session.AddRectangle(r.Context(), req.LowerLeft, req.UpperRight)
	s.created(w, h, err)
}

func (s *Server) addText(w http.ResponseWriter, r *http.Request) {
	var text cad.Text
	if err := decode(r, &text); err != nil {
		s.respondErr(w, err)
		return
	}
	h, err := s.session.AddText(r.Context(), text)
	s.created(w, h, err)
}

func (s *Server) addDimension(w http.ResponseWriter, r *http.Request) {
	var dim cad.Dimension
	if err := decode(r, &dim); err != nil {
		s.respondErr(w, err)
		return
	}
	h, err := s.session.AddDimension(r.Context(), dim)
	s.created(w, h, err)
}

func (s *Server) deleteObject(w http.ResponseWriter, r *http.Request) {
	s.done(w, s.session.DeleteObject(r.Context(), cad.Handle(chi.URLParam(r, "handle"))))
}

func (s *Server) cloneObject(w http.ResponseWriter, r *http.Request) {
	var req pointRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	h, err := s.session.CloneObject(r.Context(), cad.Handle(chi.URLParam(r, "handle")), req.Point)
	s.created(w, h, err)
}

func (s *Server) moveObject(w http.ResponseWriter, r *http.Request) {
	var req pointRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.Move(r.Context(), cad.Handle(chi.URLParam(r, "handle")), req.Point))
}

func (s *Server) scaleObject(w http.ResponseWriter, r *http.Request) {
	var req scaleRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.Scale(r.Context(), cad.Handle(chi.URLParam(r, "handle")), req.Base, req.Factor))
}

func (s *Server) rotateObject(w http.ResponseWriter, r *http.Request) {
	var req rotateRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.Rotate(r.Context(), cad.Handle(chi.URLParam(r, "handle")), req.Base, req.Angle))
}

// =============================================================================
// Block handlers
// =============================================================================

func (s *Server) listBlocks(w http.ResponseWriter, r *http.Request) {
	names, err := s.session.BlockNames(r.Context())
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, namesResponse{Names: names})
}

func (s *Server) insertBlock(w http.ResponseWriter, r *http.Request) {
	var ref cad.BlockReference
	if err := decode(r, &ref); err != nil {
		s.respondErr(w, err)
		return
	}
	h, err := s.session.InsertBlock(r.Context(), ref)
	s.created(w, h, err)
}

func (s *Server) importBlock(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	name, err := s.session.ImportBlock(r.Context(), req.Path)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, nameResponse{Name: name})
}

func (s *Server) exportBlock(w http.ResponseWriter, r *http.Request) {
	var req exportBlockRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.ExportBlock(r.Context(), chi.URLParam(r, "name"), req.Path))
}

func (s *Server) listAttributes(w http.ResponseWriter, r *http.Request) {
	attrs, err := s.session.BlockAttributes(r.Context(), cad.Handle(chi.URLParam(r, "handle")))
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, attrs)
}

func (s *Server) setAttribute(w http.ResponseWriter, r *http.Request) {
	var req attributeValueRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	h := cad.Handle(chi.URLParam(r, "handle"))
	s.done(w, s.session.SetBlockAttribute(r.Context(), h, chi.URLParam(r, "tag"), req.Value))
}

func (s *Server) deleteAttribute(w http.ResponseWriter, r *http.Request) {
	h := cad.Handle(chi.URLParam(r, "handle"))
	s.done(w, s.session.DeleteBlockAttribute(r.Context(), h, chi.URLParam(r, "tag")))
}

// =============================================================================
// Group handlers
// =============================================================================

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.CreateGroup(r.Context(), req.Name, req.Members))
}

func (s *Server) addToGroup(w http.ResponseWriter, r *http.Request) {
	var req membersRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.AddToGroup(r.Context(), chi.URLParam(r, "name"), req.Members))
}

func (s *Server) removeFromGroup(w http.ResponseWriter, r *http.Request) {
	var req membersRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.RemoveFromGroup(r.Context(), chi.URLParam(r, "name"), req.Members))
}

func (s *Server) groupMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.session.GroupMembers(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, membersResponse{Members: members})
}

// =============================================================================
// Prompt, message, and document handlers
// =============================================================================

func (s *Server) promptPoint(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	p, err := s.session.PromptPoint(r.Context(), req.Prompt)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, pointResponse{Point: p})
}

func (s *Server) promptString(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	v, err := s.session.PromptString(r.Context(), req.Prompt)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, stringResponse{Value: v})
}

func (s *Server) promptInt(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	v, err := s.session.PromptInt(r.Context(), req.Prompt)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, intResponse{Value: v})
}

func (s *Server) showMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.ShowMessage(r.Context(), req.Message))
}

func (s *Server) openDocument(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.Open(r.Context(), req.Path))
}

func (s *Server) saveDocument(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if err := decode(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	s.done(w, s.session.SaveAs(r.Context(), req.Path))
}
