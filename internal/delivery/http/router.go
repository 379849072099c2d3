package http

import (
	"net/http"

	"hms-scheduling/internal/delivery/http/handler"
	"hms-scheduling/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	doctorHandler       *handler.DoctorHandler
	scheduleHandler     *handler.ScheduleHandler
	availabilityHandler *handler.AvailabilityHandler
	slotRoomHandler     *handler.SlotRoomHandler
	appointmentHandler  *handler.AppointmentHandler
	patientHandler      *handler.PatientHandler
	facilityHandler     *handler.FacilityHandler
	settingHandler      *handler.SettingHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	scheduleHandler *handler.ScheduleHandler,
	availabilityHandler *handler.AvailabilityHandler,
	slotRoomHandler *handler.SlotRoomHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	facilityHandler *handler.FacilityHandler,
	settingHandler *handler.SettingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		doctorHandler:       doctorHandler,
		scheduleHandler:     scheduleHandler,
		availabilityHandler: availabilityHandler,
		slotRoomHandler:     slotRoomHandler,
		appointmentHandler:  appointmentHandler,
		patientHandler:      patientHandler,
		facilityHandler:     facilityHandler,
		settingHandler:      settingHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Staff accounts
	admin.HandleFunc("/staff", r.authHandler.RegisterStaff).Methods(http.MethodPost)

	// Doctor management
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Weekly schedule editor
	admin.HandleFunc("/doctors/{id}/schedule", r.scheduleHandler.GetWeek).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}/schedule", r.scheduleHandler.ReplaceWeek).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}/schedule/slots", r.scheduleHandler.AddSlot).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}/schedule/slots", r.scheduleHandler.UpdateSlot).Methods(http.MethodPatch)
	admin.HandleFunc("/doctors/{id}/schedule/slots", r.scheduleHandler.RemoveSlot).Methods(http.MethodDelete)

	// Slot room assignments
	admin.HandleFunc("/slot-rooms", r.slotRoomHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/slot-rooms", r.slotRoomHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/slot-rooms/bulk", r.slotRoomHandler.BulkCreate).Methods(http.MethodPost)
	admin.HandleFunc("/slot-rooms/{id}", r.slotRoomHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/slot-rooms/{id}", r.slotRoomHandler.Delete).Methods(http.MethodDelete)

	// Facility settings
	admin.HandleFunc("/settings/room-mode", r.settingHandler.GetRoomMode).Methods(http.MethodGet)
	admin.HandleFunc("/settings/room-mode", r.settingHandler.UpdateRoomMode).Methods(http.MethodPut)

	// Staff routes (any authenticated staff member)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/doctors/{id}/available-slots", r.availabilityHandler.GetAvailableSlots).Methods(http.MethodGet)
	staff.HandleFunc("/doctors/{id}/room", r.doctorHandler.GetDoctorRoom).Methods(http.MethodGet)
	staff.HandleFunc("/floors", r.facilityHandler.ListFloors).Methods(http.MethodGet)
	staff.HandleFunc("/rooms", r.facilityHandler.ListRooms).Methods(http.MethodGet)
	staff.HandleFunc("/rooms/{id}/reception", r.facilityHandler.SuggestReception).Methods(http.MethodGet)
	staff.HandleFunc("/receptions", r.facilityHandler.ListReceptions).Methods(http.MethodGet)

	// Reception desk routes (admin or receptionist)
	desk := api.PathPrefix("").Subrouter()
	desk.Use(r.authMiddleware.Authenticate)
	desk.Use(middleware.RequireAdminOrReceptionist)

	desk.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	desk.HandleFunc("/patients", r.patientHandler.Search).Methods(http.MethodGet)
	desk.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)

	desk.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	desk.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	desk.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	desk.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)
	desk.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
