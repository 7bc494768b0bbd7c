package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/streamhaven/catalogd/pkg/storage"
	"github.com/streamhaven/catalogd/pkg/sync"
	"go.uber.org/zap"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Syncer is the sync engine surface the admin endpoints drive.
type Syncer interface {
	RunDiscovery(ctx context.Context, mediaType storage.MediaType, limit int) (*sync.BatchReport, error)
	RunResync(ctx context.Context, mediaType storage.MediaType) (*sync.BatchReport, error)
}

type GenericResponse struct {
	Response any `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var validate = validator.New()

// Server houses the dependencies of the catalog admin API: the sync engine,
// storage for config and audit reads, and the base logger.
type Server struct {
	baseLogger *zap.SugaredLogger
	syncer     Syncer
	store      storage.Storage
}

// New creates a new catalog server
func New(logger *zap.SugaredLogger, syncer Syncer, store storage.Storage) Server {
	return Server{
		baseLogger: logger,
		syncer:     syncer,
		store:      store,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, errorResponse{Error: err.Error()})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	admin := rtr.PathPrefix("/admin/catalog").Subrouter()
	admin.HandleFunc("/bulk-import", s.BulkImport()).Methods(http.MethodPost)
	admin.HandleFunc("/sync", s.Sync()).Methods(http.MethodPost)
	admin.HandleFunc("/sync-records", s.ListSyncRecords()).Methods(http.MethodGet)
	admin.HandleFunc("/config", s.GetCatalogConfig()).Methods(http.MethodGet)
	admin.HandleFunc("/config", s.PutCatalogConfig()).Methods(http.MethodPut)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
