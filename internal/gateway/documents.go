package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dkoval/projectdesk/internal/model"
)

// kindPaths maps document kinds onto their upstream collection paths.
var kindPaths = map[string]string{
	model.DocSalesOrder:    "/sales-orders",
	model.DocPurchaseOrder: "/purchase-orders",
	model.DocInvoice:       "/invoices",
	model.DocBill:          "/bills",
	model.DocExpense:       "/expenses",
}

type documentsResp struct {
	Documents []model.Document `json:"documents"`
}

type documentResp struct {
	Message  string         `json:"message"`
	Document model.Document `json:"document"`
}

func kindPath(kind string) (string, error) {
	p, ok := kindPaths[kind]
	if !ok {
		return "", fmt.Errorf("unknown document kind %q", kind)
	}
	return p, nil
}

// Documents lists all documents of one kind.
func (c *Client) Documents(ctx context.Context, kind string) ([]model.Document, error) {
	p, err := kindPath(kind)
	if err != nil {
		return nil, err
	}
	var resp documentsResp
	if err := c.do(ctx, http.MethodGet, p, nil, &resp); err != nil {
		return nil, err
	}
	for i := range resp.Documents {
		resp.Documents[i].Kind = kind
	}
	return resp.Documents, nil
}

// CreateDocument creates a document of its kind upstream.
func (c *Client) CreateDocument(ctx context.Context, d model.Document) (model.Document, error) {
	p, err := kindPath(d.Kind)
	if err != nil {
		return model.Document{}, err
	}
	var resp documentResp
	if err := c.do(ctx, http.MethodPost, p, d, &resp); err != nil {
		return model.Document{}, err
	}
	resp.Document.Kind = d.Kind
	return resp.Document, nil
}

type documentStatusReq struct {
	Status string `json:"status"`
}

// UpdateDocumentStatus transitions a document's status.
func (c *Client) UpdateDocumentStatus(ctx context.Context, kind, id, status string) (model.Document, error) {
	p, err := kindPath(kind)
	if err != nil {
		return model.Document{}, err
	}
	var resp documentResp
	if err := c.do(ctx, http.MethodPut, p+"/"+url.PathEscape(id)+"/status", documentStatusReq{Status: status}, &resp); err != nil {
		return model.Document{}, err
	}
	resp.Document.Kind = kind
	return resp.Document, nil
}
