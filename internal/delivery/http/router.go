package http

import (
	"net/http"

	"clinic-profiles-service/internal/delivery/http/handler"
	"clinic-profiles-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	receptionistHandler *handler.ReceptionistHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	receptionistHandler *handler.ReceptionistHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		receptionistHandler: receptionistHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Read routes (any authenticated role)
	read := api.NewRoute().Subrouter()
	read.Use(r.authMiddleware.Authenticate)

	read.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	read.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	read.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	read.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	read.HandleFunc("/receptionists", r.receptionistHandler.GetAllReceptionists).Methods(http.MethodGet)
	read.HandleFunc("/receptionists/{id}", r.receptionistHandler.GetReceptionist).Methods(http.MethodGet)

	// Account linking (any authenticated role; patients link their own account)
	read.HandleFunc("/patients/{id}/link-account", r.patientHandler.LinkAccount).Methods(http.MethodPost)

	// Mutation routes (receptionist only)
	write := api.NewRoute().Subrouter()
	write.Use(r.authMiddleware.Authenticate)
	write.Use(middleware.RequireReceptionist)

	write.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	write.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	write.HandleFunc("/doctors/{id}/status", r.doctorHandler.ChangeDoctorStatus).Methods(http.MethodPut)

	write.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	write.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	write.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	write.HandleFunc("/receptionists", r.receptionistHandler.CreateReceptionist).Methods(http.MethodPost)
	write.HandleFunc("/receptionists/{id}", r.receptionistHandler.UpdateReceptionist).Methods(http.MethodPut)
	write.HandleFunc("/receptionists/{id}", r.receptionistHandler.DeleteReceptionist).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
