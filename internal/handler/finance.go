package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/queue"
	"github.com/dkoval/projectdesk/internal/rbac"
	"github.com/dkoval/projectdesk/internal/reconcile"
	"github.com/dkoval/projectdesk/internal/utils"
)

// DocumentGateway is the slice of the upstream API the finance pages use.
type DocumentGateway interface {
	Documents(ctx context.Context, kind string) ([]model.Document, error)
	CreateDocument(ctx context.Context, d model.Document) (model.Document, error)
	UpdateDocumentStatus(ctx context.Context, kind, id, status string) (model.Document, error)
}

// DocumentFallback is the persistent local collection of finance documents.
type DocumentFallback interface {
	Append(ctx context.Context, d model.Document) error
	ListByKind(ctx context.Context, kind string) []model.Document
	Remove(ctx context.Context, id string)
}

// FinanceHandler serves every document page; routes bind it to a concrete
// kind.
type FinanceHandler struct {
	Gateway DocumentGateway
	Local   DocumentFallback
	Demo    func(kind string) []model.Document
	Publish PublishFunc
}

func NewFinanceHandler(gw DocumentGateway, local DocumentFallback, demoFn func(string) []model.Document, pub PublishFunc) *FinanceHandler {
	return &FinanceHandler{Gateway: gw, Local: local, Demo: demoFn, Publish: pub}
}

// ----- DTOs -----

type documentReq struct {
	Number    string  `json:"number" validate:"required"`
	ProjectID string  `json:"project_id"`
	VendorID  string  `json:"vendor_id"`
	Total     float64 `json:"total" validate:"gte=0"`
	Currency  string  `json:"currency" validate:"required,len=3"`
	Status    string  `json:"status"`
	IssueDate string  `json:"issue_date"`
	DueDate   string  `json:"due_date"`
	Notes     string  `json:"notes"`
}

type documentStatusReq struct {
	Status string `json:"status" validate:"required"`
}

// defaultStatus is the status a new document starts in when none is given.
func defaultStatus(kind string) string {
	if kind == model.DocExpense {
		return "submitted"
	}
	return "draft"
}

// List returns the reconciled document collection of one kind. Finance
// documents are not membership-scoped: whoever may open the page sees the
// whole collection.
func (h *FinanceHandler) List(kind string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		remote, err := h.Gateway.Documents(ctx, kind)
		if err != nil {
			logrus.WithError(err).Debug("documents: remote fetch failed, using fallback")
			remote = nil
		}
		merged := reconcile.Merge(remote, h.Local.ListByKind(ctx, kind), h.Demo(kind))
		return c.JSON(http.StatusOK, echo.Map{"documents": merged})
	}
}

// Create makes a new document of the bound kind.
func (h *FinanceHandler) Create(kind string) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)
		resource := rbac.ResDocument
		if kind == model.DocExpense {
			resource = rbac.ResExpense
		}
		if !rbac.Can(user.Role, resource, rbac.ActionCreate) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}

		var req documentReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		}
		req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
		if err := utils.ValidateStruct(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		status := req.Status
		if status == "" {
			status = defaultStatus(kind)
		}
		if !model.ValidDocumentStatus(kind, status) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status for " + kind})
		}

		d := model.Document{
			Kind:      kind,
			Number:    req.Number,
			ProjectID: req.ProjectID,
			VendorID:  req.VendorID,
			Total:     req.Total,
			Currency:  req.Currency,
			Status:    status,
			IssueDate: req.IssueDate,
			DueDate:   req.DueDate,
			Notes:     req.Notes,
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		created, err := h.Gateway.CreateDocument(ctx, d)
		if err != nil {
			d.ID = "local-" + uuid.NewString()
			_ = h.Local.Append(ctx, d)
			created = d
		}
		return c.JSON(http.StatusCreated, echo.Map{"message": "document created", "document": created})
	}
}

// UpdateStatus transitions a document's status. Approving or rejecting an
// expense is an approval action, not an edit, and is gated accordingly.
func (h *FinanceHandler) UpdateStatus(kind string) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)

		var req documentStatusReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		}
		if err := utils.ValidateStruct(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if !model.ValidDocumentStatus(kind, req.Status) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status for " + kind})
		}

		resource, action := rbac.ResDocument, rbac.ActionEdit
		if kind == model.DocExpense && (req.Status == "approved" || req.Status == "rejected") {
			resource, action = rbac.ResExpense, rbac.ActionApprove
		}
		if !rbac.Can(user.Role, resource, action) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}

		id := c.Param("id")
		ctx, cancel := reqCtx(c)
		defer cancel()

		updated, err := h.Gateway.UpdateDocumentStatus(ctx, kind, id, req.Status)
		if err != nil {
			// Carry the transition on the local copy when there is one.
			updated = model.Document{ID: id, Kind: kind, Status: req.Status}
			for _, d := range h.Local.ListByKind(ctx, kind) {
				if d.ID == id {
					d.Status = req.Status
					_ = h.Local.Append(ctx, d) // upsert
					updated = d
					break
				}
			}
		}
		publish(h.Publish, c, queue.ActivityEvent{
			Kind:       queue.EventDocumentStatus,
			Resource:   kind,
			ResourceID: id,
			Detail:     req.Status,
		})
		return c.JSON(http.StatusOK, echo.Map{"message": "status updated", "document": updated})
	}
}
