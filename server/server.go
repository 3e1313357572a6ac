package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ray-remotestate/bento/handlers"
	"github.com/ray-remotestate/bento/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes() *Server {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(middlewares.RequestLogger, middlewares.Recover)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	router.HandleFunc("/menus", handlers.ListMenus).Methods("GET")
	router.HandleFunc("/menus", handlers.CreateMenu).Methods("POST")
	router.HandleFunc("/menus/{id}", handlers.GetMenu).Methods("GET")
	router.HandleFunc("/menus/{id}", handlers.UpdateMenu).Methods("PUT")
	router.HandleFunc("/menus/{id}", handlers.PatchMenu).Methods("PATCH")
	router.HandleFunc("/menus/{id}", handlers.DeleteMenu).Methods("DELETE")

	router.HandleFunc("/customer-companies", handlers.ListCompanies).Methods("GET")
	router.HandleFunc("/customer-companies", handlers.CreateCompany).Methods("POST")
	router.HandleFunc("/customer-companies/{id}", handlers.GetCompany).Methods("GET")
	router.HandleFunc("/customer-companies/{id}", handlers.UpdateCompany).Methods("PUT")
	router.HandleFunc("/customer-companies/{id}", handlers.PatchCompany).Methods("PATCH")
	router.HandleFunc("/customer-companies/{id}", handlers.DeleteCompany).Methods("DELETE")

	router.HandleFunc("/accounts", handlers.ListAccounts).Methods("GET")
	router.HandleFunc("/accounts", handlers.CreateAccount).Methods("POST")
	router.HandleFunc("/accounts/{id}", handlers.GetAccount).Methods("GET")
	router.HandleFunc("/accounts/{id}", handlers.DeleteAccount).Methods("DELETE")

	router.HandleFunc("/customer-users", handlers.ListCustomerUsers).Methods("GET")
	router.HandleFunc("/customer-users", handlers.CreateCustomerUser).Methods("POST")
	router.HandleFunc("/customer-users/{id}", handlers.GetCustomerUser).Methods("GET")
	router.HandleFunc("/customer-users/{id}", handlers.UpdateCustomerUser).Methods("PUT")
	router.HandleFunc("/customer-users/{id}", handlers.PatchCustomerUser).Methods("PATCH")
	router.HandleFunc("/customer-users/{id}", handlers.DeleteCustomerUser).Methods("DELETE")

	router.HandleFunc("/orders", handlers.ListOrders).Methods("GET")
	router.HandleFunc("/orders", handlers.CreateOrder).Methods("POST")
	router.HandleFunc("/orders/{id}", handlers.GetOrder).Methods("GET")
	router.HandleFunc("/orders/{id}", handlers.UpdateOrder).Methods("PUT")
	router.HandleFunc("/orders/{id}", handlers.PatchOrder).Methods("PATCH")
	router.HandleFunc("/orders/{id}", handlers.DeleteOrder).Methods("DELETE")

	router.HandleFunc("/order-items", handlers.ListOrderItems).Methods("GET")
	router.HandleFunc("/order-items", handlers.CreateOrderItem).Methods("POST")
	router.HandleFunc("/order-items/{id}", handlers.GetOrderItem).Methods("GET")
	router.HandleFunc("/order-items/{id}", handlers.UpdateOrderItem).Methods("PUT")
	router.HandleFunc("/order-items/{id}", handlers.PatchOrderItem).Methods("PATCH")
	router.HandleFunc("/order-items/{id}", handlers.DeleteOrderItem).Methods("DELETE")

	router.HandleFunc("/system-settings", handlers.ListSettings).Methods("GET")
	router.HandleFunc("/system-settings", handlers.CreateSetting).Methods("POST")
	router.HandleFunc("/system-settings/{id}", handlers.GetSetting).Methods("GET")
	router.HandleFunc("/system-settings/{id}", handlers.UpdateSetting).Methods("PUT")
	router.HandleFunc("/system-settings/{id}", handlers.PatchSetting).Methods("PATCH")
	router.HandleFunc("/system-settings/{id}", handlers.DeleteSetting).Methods("DELETE")

	router.HandleFunc("/announcements", handlers.ListAnnouncements).Methods("GET")
	router.HandleFunc("/announcements", handlers.CreateAnnouncement).Methods("POST")
	router.HandleFunc("/announcements/{id}", handlers.GetAnnouncement).Methods("GET")
	router.HandleFunc("/announcements/{id}", handlers.UpdateAnnouncement).Methods("PUT")
	router.HandleFunc("/announcements/{id}", handlers.PatchAnnouncement).Methods("PATCH")
	router.HandleFunc("/announcements/{id}", handlers.DeleteAnnouncement).Methods("DELETE")

	router.HandleFunc("/daily-summary", handlers.DailySummary).Methods("GET")
	router.HandleFunc("/customer-order-status", handlers.CustomerOrderStatus).Methods("GET")
	router.HandleFunc("/company-order-status", handlers.CompanyOrderStatus).Methods("GET")
	router.HandleFunc("/export-csv", handlers.ExportDailyOrdersCSV).Methods("GET")
	router.HandleFunc("/export-annual-orders-csv", handlers.ExportAnnualOrdersCSV).Methods("GET")
	router.HandleFunc("/export-monthly-orders-csv", handlers.ExportMonthlyOrdersCSV).Methods("GET")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
