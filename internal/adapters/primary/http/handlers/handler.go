package handlers

import (
	"asset-management-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	tradeSvc      *services.TradeService
	assetSvc      *services.AssetService
	valuationSvc  *services.ValuationService
	assumptionSvc *services.AssumptionService
	outcomeSvc    *services.OutcomeService
	servicingSvc  *services.ServicingService
	extractionSvc *services.ExtractionService
	sharepointSvc *services.SharePointService
	taskSvc       *services.TaskService
	calendarSvc   *services.CalendarService
	contactSvc    *services.ContactService
}

func New(
	tradeSvc *services.TradeService,
	assetSvc *services.AssetService,
	valuationSvc *services.ValuationService,
	assumptionSvc *services.AssumptionService,
	outcomeSvc *services.OutcomeService,
	servicingSvc *services.ServicingService,
	extractionSvc *services.ExtractionService,
	sharepointSvc *services.SharePointService,
	taskSvc *services.TaskService,
	calendarSvc *services.CalendarService,
	contactSvc *services.ContactService,
) *Handler {
	return &Handler{
		tradeSvc:      tradeSvc,
		assetSvc:      assetSvc,
		valuationSvc:  valuationSvc,
		assumptionSvc: assumptionSvc,
		outcomeSvc:    outcomeSvc,
		servicingSvc:  servicingSvc,
		extractionSvc: extractionSvc,
		sharepointSvc: sharepointSvc,
		taskSvc:       taskSvc,
		calendarSvc:   calendarSvc,
		contactSvc:    contactSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Trades
	r.GET("/trades", h.ListTrades)
	r.GET("/trades/:id", h.GetTrade)
	r.POST("/trades", h.CreateTrade)
	r.PATCH("/trades/:id", h.UpdateTrade)
	r.DELETE("/trades/:id", h.DeleteTrade)

	// Trade-level actions
	r.GET("/trades/:id/assets", h.ListTradeAssets)
	r.POST("/trades/:id/import", h.ImportTape)
	r.POST("/trades/:id/provision", h.ProvisionTrade)

	// Assets
	r.GET("/assets", h.ListAssets)
	r.GET("/assets/:id", h.GetAsset)
	r.PATCH("/assets/:id", h.UpdateAsset)
	r.PUT("/assets/:id/loan", h.UpdateLoan)
	r.PUT("/assets/:id/property", h.UpdateProperty)

	// Valuations (nested under asset)
	r.GET("/assets/:id/valuations", h.ListValuations)
	r.POST("/assets/:id/valuations", h.CreateValuation)
	r.GET("/assets/:id/valuations/resolved", h.GetResolvedValuation)
	r.DELETE("/valuations/:id", h.DeleteValuation)

	// Assumptions
	r.GET("/assumptions/global", h.GetGlobalAssumptions)
	r.PUT("/assumptions/global", h.UpsertGlobalAssumptions)
	r.GET("/assumptions/states", h.ListStateAssumptions)
	r.GET("/assumptions/states/:state", h.GetStateAssumptions)
	r.PUT("/assumptions/states/:state", h.UpsertStateAssumptions)
	r.GET("/assets/:id/assumptions", h.GetResolvedAssumptions)
	r.GET("/assets/:id/assumptions/override", h.GetOverride)
	r.PUT("/assets/:id/assumptions/override", h.UpsertOverride)
	r.DELETE("/assets/:id/assumptions/override", h.DeleteOverride)

	// Outcome modeling
	r.GET("/assets/:id/outcomes", h.ListOutcomes)
	r.GET("/assets/:id/outcomes/summary", h.GetOutcomeSummary)
	r.POST("/assets/:id/model", h.ModelAllOutcomes)
	r.POST("/assets/:id/model/:type", h.ModelOutcome)
	r.POST("/assets/:id/activate/:type", h.ActivateOutcome)

	// Servicing
	r.POST("/servicing/import", h.ImportServicerFeed)
	r.GET("/assets/:id/servicing/latest", h.GetLatestServicerRecord)
	r.GET("/assets/:id/servicing/history", h.GetServicerHistory)

	// Document extraction
	r.POST("/assets/:id/extractions", h.RunExtraction)
	r.GET("/assets/:id/extractions", h.ListExtractions)
	r.GET("/extractions/:id", h.GetExtraction)

	// Tasks
	r.GET("/tasks", h.ListTasks)
	r.GET("/tasks/:id", h.GetTask)
	r.POST("/tasks", h.CreateTask)
	r.PATCH("/tasks/:id", h.UpdateTask)
	r.DELETE("/tasks/:id", h.DeleteTask)

	// Calendar
	r.GET("/events", h.ListEvents)
	r.GET("/events/:id", h.GetEvent)
	r.POST("/events", h.CreateEvent)
	r.PATCH("/events/:id", h.UpdateEvent)
	r.DELETE("/events/:id", h.DeleteEvent)

	// Contacts
	r.GET("/contacts", h.ListContacts)
	r.GET("/contacts/:id", h.GetContact)
	r.POST("/contacts", h.CreateContact)
	r.PATCH("/contacts/:id", h.UpdateContact)
	r.DELETE("/contacts/:id", h.DeleteContact)
}
