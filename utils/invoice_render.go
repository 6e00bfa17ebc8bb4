package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// InvoiceData is the denormalized booking view the renderer works from.
// Line-item prices come from the booking's snapshot, not the current catalog,
// so the line items always sum to TotalAmount.
type InvoiceData struct {
	InvoiceNumber      string
	DateCreated        string
	Diver              string
	Course             string
	CoursePrice        float64
	Accommodation      string
	AccommodationRate  float64
	AccommodationPrice float64
	Nights             int
	CheckIn            string
	CheckOut           string
	TotalAmount        float64
	PaymentStatus      string
	Notes              string
}

func (d InvoiceData) HasCourse() bool        { return d.Course != "" }
func (d InvoiceData) HasAccommodation() bool { return d.Accommodation != "" }
func (d InvoiceData) StatusColor() string {
	if d.PaymentStatus == "paid" {
		return "#10b981"
	}
	return "#ef4444"
}
func (d InvoiceData) GeneratedAt() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"upper": strings.ToUpper,
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.Data.InvoiceNumber}}</title></head>
<body>
<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px;">
  <div style="text-align: center; margin-bottom: 30px; border-bottom: 2px solid #0066cc; padding-bottom: 20px;">
    <h1 style="color: #0066cc; margin: 0; font-size: 32px;">{{.ShopName}}</h1>
    <p style="color: #666; margin: 5px 0;">Diving Adventures &amp; Training</p>
  </div>

  <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 30px; margin-bottom: 30px;">
    <div>
      <h3 style="color: #0066cc; margin-top: 0;">Company Details</h3>
      <p style="margin: 5px 0;"><strong>{{.ShopName}}</strong></p>
      <p style="margin: 5px 0; color: #666;">Premium Diving Services</p>
      <p style="margin: 5px 0; color: #666;">{{.ShopEmail}}</p>
      <p style="margin: 5px 0; color: #666;">{{.ShopPhone}}</p>
    </div>
    <div>
      <h3 style="color: #0066cc; margin-top: 0;">Invoice Details</h3>
      <p style="margin: 5px 0;"><strong>Invoice #:</strong> {{.Data.InvoiceNumber}}</p>
      <p style="margin: 5px 0;"><strong>Date:</strong> {{.Data.DateCreated}}</p>
      <p style="margin: 5px 0;"><strong>Status:</strong>
        <span style="background-color: {{.Data.StatusColor}}; color: white; padding: 4px 8px; border-radius: 4px; font-weight: bold;">{{upper .Data.PaymentStatus}}</span>
      </p>
    </div>
  </div>

  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 8px; margin-bottom: 30px;">
    <h3 style="color: #0066cc; margin-top: 0;">Bill To</h3>
    <p style="margin: 5px 0; font-size: 16px;"><strong>{{.Data.Diver}}</strong></p>
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-bottom: 30px;">
    <thead>
      <tr style="background-color: #0066cc; color: white;">
        <th style="padding: 12px; text-align: left; border: 1px solid #ddd;">Description</th>
        <th style="padding: 12px; text-align: right; border: 1px solid #ddd;">Unit Price</th>
        <th style="padding: 12px; text-align: right; border: 1px solid #ddd;">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{if .Data.HasCourse}}
      <tr style="border-bottom: 1px solid #ddd;">
        <td style="padding: 12px; border-right: 1px solid #ddd;">
          <strong>{{.Data.Course}}</strong><br/>
          {{if and .Data.CheckIn .Data.CheckOut}}<span style="color: #666; font-size: 12px;">{{.Data.CheckIn}} to {{.Data.CheckOut}}</span>{{end}}
        </td>
        <td style="padding: 12px; text-align: right; border-right: 1px solid #ddd;">{{money .Data.CoursePrice}}</td>
        <td style="padding: 12px; text-align: right;">{{money .Data.CoursePrice}}</td>
      </tr>
      {{end}}
      {{if .Data.HasAccommodation}}
      <tr style="border-bottom: 1px solid #ddd;">
        <td style="padding: 12px; border-right: 1px solid #ddd;">
          <strong>{{.Data.Accommodation}}</strong><br/>
          <span style="color: #666; font-size: 12px;">{{.Data.Nights}} night(s) &times; {{money .Data.AccommodationRate}}</span>
        </td>
        <td style="padding: 12px; text-align: right; border-right: 1px solid #ddd;">{{money .Data.AccommodationRate}}</td>
        <td style="padding: 12px; text-align: right;">{{money .Data.AccommodationPrice}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div style="display: flex; justify-content: flex-end; margin-bottom: 30px;">
    <div style="width: 300px;">
      <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 10px; border-top: 2px solid #0066cc; padding-top: 15px;">
        <div style="text-align: right; font-weight: bold;">TOTAL:</div>
        <div style="text-align: right; font-size: 24px; font-weight: bold; color: #0066cc;">{{money .Data.TotalAmount}}</div>
      </div>
    </div>
  </div>

  <div style="text-align: center; color: #666; font-size: 12px; border-top: 1px solid #ddd; padding-top: 20px;">
    <p style="margin: 5px 0;">Thank you for diving with {{.ShopName}}!</p>
    <p style="margin: 5px 0;">For questions, contact us at {{.ShopEmail}}</p>
    <p style="margin: 5px 0; color: #999;">Invoice generated on {{.Data.GeneratedAt}}</p>
  </div>
</div>
</body>
</html>
`))

type invoicePage struct {
	ShopName  string
	ShopEmail string
	ShopPhone string
	Data      InvoiceData
}

// RenderInvoiceHTML builds the invoice document. Both delivery modes (persist
// as file, inline for the browser print dialog) render from this one
// construction.
func RenderInvoiceHTML(data InvoiceData) (string, error) {
	page := invoicePage{
		ShopName:  EnvOrDefault("SHOP_NAME", "Dive Buddy"),
		ShopEmail: EnvOrDefault("SHOP_EMAIL", "contact@divebuddy.com"),
		ShopPhone: EnvOrDefault("SHOP_PHONE", "+1 (555) 123-4567"),
		Data:      data,
	}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.String(), nil
}

// SaveInvoiceFile renders the invoice and persists it under INVOICE_DIR,
// returning the written path.
func SaveInvoiceFile(data InvoiceData) (string, error) {
	html, err := RenderInvoiceHTML(data)
	if err != nil {
		return "", err
	}

	dir := EnvOrDefault("INVOICE_DIR", filepath.Join("uploads", "invoices"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create invoice dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("invoice-%s.html", data.InvoiceNumber))
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("failed to write invoice file: %w", err)
	}
	return path, nil
}
