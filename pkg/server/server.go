package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/fin-tools/finsight/pkg/handlers/finance"
	finsightmiddleware "github.com/fin-tools/finsight/pkg/server/middleware"
	"github.com/fin-tools/finsight/pkg/store/sqlite/budget"
	"github.com/fin-tools/finsight/pkg/store/sqlite/goal"
	"github.com/fin-tools/finsight/pkg/store/sqlite/transaction"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Transactions transaction.Store
	Goals        goal.Store
	Budgets      budget.Store
	Logger       zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires every API route onto a chi mux.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	handler := handlers.NewHandler(deps.Transactions, deps.Goals, deps.Budgets)

	router := chi.NewRouter()
	router.Use(finsightmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/transactions", handler.ListTransactions)
		r.Post("/transactions", handler.CreateTransaction)
		r.Delete("/transactions/{id}", handler.DeleteTransaction)

		r.Get("/goals", handler.ListGoals)
		r.Post("/goals", handler.CreateGoal)
		r.Put("/goals/{id}/progress", handler.UpdateGoalProgress)
		r.Delete("/goals/{id}", handler.DeleteGoal)

		r.Get("/budgets", handler.ListBudgets)
		r.Post("/budgets", handler.CreateBudget)
		r.Delete("/budgets/{id}", handler.DeleteBudget)

		r.Get("/summary", handler.GetSummary)
		r.Get("/health", handler.GetHealth)
		r.Get("/trend", handler.GetTrend)
		r.Get("/analytics/category-month", handler.GetCategoryMatrix)
		r.Get("/analytics/budget-vs-actual", handler.GetBudgetVsActual)
		r.Get("/recommendations", handler.GetRecommendations)
		r.Post("/recommendations", handler.GetRecommendations)
		r.Get("/ai/suggestions", handler.GetSuggestions)
	})

	return router
}

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger
	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Start serves until the listener fails or a termination signal arrives,
// then drains outstanding requests within the shutdown timeout.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
