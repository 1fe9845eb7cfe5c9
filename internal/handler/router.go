package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(widgetHandler *WidgetHandler, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "certidao-widget"})
	}).Methods("GET")

	// Full paths on the root router: a method mismatch on a subrouter is
	// reported as 404 once a later route fails to match.
	const prefix = "/api/v1/widget"
	router.HandleFunc(prefix, widgetHandler.GetState).Methods("GET")
	router.HandleFunc(prefix+"/pick", widgetHandler.Pick).Methods("POST")
	router.HandleFunc(prefix+"/drop", widgetHandler.Drop).Methods("POST")
	router.HandleFunc(prefix+"/dragover", widgetHandler.DragOver).Methods("POST")
	router.HandleFunc(prefix+"/dragleave", widgetHandler.DragLeave).Methods("POST")
	router.HandleFunc(prefix+"/submit", widgetHandler.Submit).Methods("POST")
	router.HandleFunc(prefix+"/copy", widgetHandler.Copy).Methods("POST")
	router.HandleFunc(prefix+"/alerts/{id}", widgetHandler.DismissAlert).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
