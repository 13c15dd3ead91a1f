package chrome

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rekini-api/internal/domain/entity"
	"github.com/jhoicas/rekini-api/internal/domain/pricing"
)

// invoicePage se parsea una sola vez por proceso. El escape contextual de
// html/template garantiza que nombre y registro del receptor llegan al
// documento sin corromperse aunque contengan caracteres especiales.
var invoicePage = template.Must(template.New("rekins").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}).Parse(invoicePageHTML))

type pageData struct {
	*entity.Invoice
	TaxLabel string
}

// renderHTML produce la página A4 del rēķins lista para imprimirse.
func renderHTML(inv *entity.Invoice) (string, error) {
	var buf bytes.Buffer
	data := pageData{
		Invoice:  inv,
		TaxLabel: fmt.Sprintf("PVN (%d%%)", pricing.TaxRatePercent),
	}
	if err := invoicePage.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("plantilla del rēķins: %w", err)
	}
	return buf.String(), nil
}

// Maquetación tomada del diseño original del formulario: cabecera con
// degradado, bloque Sūtītājs/Saņēmēja, tabla 60/20/20 y totales con el
// gran total destacado. Ancho/alto fijados a A4 para PrintToPDF.
const invoicePageHTML = `<!DOCTYPE html>
<html lang="lv">
<head>
<meta charset="UTF-8" />
<title>Rēķins #{{.Number}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: "Inter", -apple-system, "Segoe UI", sans-serif;
    line-height: 1.3; color: #1a1a1a; background: #ffffff;
    width: 210mm; height: 297mm;
    -webkit-print-color-adjust: exact; print-color-adjust: exact;
  }
  .invoice-page { width: 100%; height: 297mm; display: flex; flex-direction: column; }
  .header {
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    color: white; padding: 18px 25px 15px 25px; flex-shrink: 0;
  }
  .header-content { display: flex; justify-content: space-between; align-items: flex-start; }
  .company-name { font-size: 20px; font-weight: 800; margin-bottom: 3px; }
  .company-tagline { font-size: 12px; opacity: 0.9; margin-bottom: 8px; }
  .company-details { font-size: 12px; line-height: 1.4; opacity: 0.85; }
  .invoice-section { text-align: right; flex: 1; }
  .invoice-title { font-size: 28px; font-weight: 800; margin-bottom: 4px; }
  .invoice-subtitle { font-size: 12px; opacity: 0.9; margin-bottom: 10px; }
  .invoice-meta {
    background: rgba(255, 255, 255, 0.15); padding: 12px;
    border-radius: 6px; border: 1px solid rgba(255, 255, 255, 0.2);
  }
  .meta-row { display: flex; justify-content: space-between; margin-bottom: 8px; font-size: 14px; }
  .meta-row:last-child { margin-bottom: 0; }
  .meta-label { font-weight: 500; opacity: 0.8; }
  .meta-value { font-weight: 700; }
  .main-content { padding: 20px 25px; flex: 1; display: flex; flex-direction: column; }
  .client-section { display: flex; justify-content: space-between; margin-bottom: 20px; gap: 15px; }
  .client-info, .sender-info { flex: 1; }
  .section-label {
    font-size: 12px; font-weight: 700; color: #667eea;
    text-transform: uppercase; letter-spacing: 1px; margin-bottom: 15px;
  }
  .info-card {
    background: #f8fafc; border: 2px solid #e2e8f0; border-left: 4px solid #667eea;
    padding: 12px; border-radius: 6px;
  }
  .info-item { margin-bottom: 6px; font-size: 13px; color: #2d3748; }
  .info-item:last-child { margin-bottom: 0; }
  .info-label { font-weight: 600; color: #4a5568; }
  .services-section { margin-bottom: 15px; flex: 1; }
  .services-table { width: 100%; border-collapse: collapse; background: white; }
  .services-table thead { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; }
  .services-table th {
    padding: 10px 12px; text-align: left; font-weight: 700; font-size: 11px;
    text-transform: uppercase; letter-spacing: 0.5px;
  }
  .services-table td { padding: 10px 12px; border-bottom: 1px solid #e2e8f0; font-size: 12px; color: #2d3748; }
  .service-name { font-weight: 600; color: #1a202c; }
  .service-price { font-weight: 700; color: #667eea; text-align: right; }
  .totals-section { display: flex; justify-content: flex-end; margin-bottom: 15px; }
  .totals-card {
    background: #f8fafc; border: 2px solid #e2e8f0; border-radius: 6px;
    padding: 15px; min-width: 220px;
  }
  .total-row { display: flex; justify-content: space-between; margin-bottom: 10px; font-size: 14px; }
  .total-row:last-child {
    margin-bottom: 0; padding-top: 15px; border-top: 2px solid #e2e8f0;
    font-size: 20px; font-weight: 800; color: #1a202c;
  }
  .total-label { font-weight: 600; color: #4a5568; }
  .total-amount { font-weight: 700; color: #667eea; }
  .grand-total .total-amount { color: #1a202c; font-size: 20px; }
  .footer { background: #f8fafc; padding: 15px 25px; border-top: 3px solid #667eea; flex-shrink: 0; }
  .footer-content { display: flex; justify-content: space-between; align-items: center; }
  .footer-text { font-size: 14px; color: #4a5568; margin-bottom: 5px; }
  .footer-note { font-size: 12px; color: #718096; font-style: italic; }
  .payment-info {
    background: #e6fffa; border: 1px solid #81e6d9; border-radius: 8px; padding: 20px;
  }
  .payment-title { font-size: 16px; font-weight: 700; color: #234e52; margin-bottom: 10px; }
  .payment-details { font-size: 14px; color: #2d3748; line-height: 1.6; }
</style>
</head>
<body>
<div class="invoice-page">
  <div class="header">
    <div class="header-content">
      <div class="company-section">
        <div class="company-name">{{.Sender.Name}}</div>
        <div class="company-tagline">{{.Sender.Tagline}}</div>
        <div class="company-details">
          {{.Sender.Address}}<br>
          {{.Sender.Phone}}<br>
          {{.Sender.Email}}<br>
          {{.Sender.Website}}
        </div>
      </div>
      <div class="invoice-section">
        <div class="invoice-title">RĒĶINS</div>
        <div class="invoice-subtitle">Pakalpojumu rēķins</div>
        <div class="invoice-meta">
          <div class="meta-row">
            <span class="meta-label">Rēķina Nr.</span>
            <span class="meta-value">{{.Number}}</span>
          </div>
          <div class="meta-row">
            <span class="meta-label">Datums</span>
            <span class="meta-value">{{.IssueDate}}</span>
          </div>
          <div class="meta-row">
            <span class="meta-label">Termiņš</span>
            <span class="meta-value">{{.PaymentTerm}}</span>
          </div>
        </div>
      </div>
    </div>
  </div>

  <div class="main-content">
    <div class="client-section">
      <div class="sender-info">
        <div class="section-label">Sūtītājs</div>
        <div class="info-card">
          <div class="info-item"><span class="info-label">Uzņēmums:</span> {{.Sender.Name}}</div>
          <div class="info-item"><span class="info-label">Adrese:</span> {{.Sender.Address}}</div>
          <div class="info-item"><span class="info-label">Reģ. Nr.:</span> {{.Sender.RegNumber}}</div>
          <div class="info-item"><span class="info-label">PVN Nr.:</span> {{.Sender.VATNumber}}</div>
        </div>
      </div>
      <div class="client-info">
        <div class="section-label">Saņēmējs</div>
        <div class="info-card">
          <div class="info-item"><span class="info-label">Nosaukums:</span> {{.Recipient.Name}}</div>
          <div class="info-item"><span class="info-label">Reģ. Nr.:</span> {{.Recipient.RegNumber}}</div>
          <div class="info-item"><span class="info-label">Adrese:</span> {{.Recipient.Address}}</div>
        </div>
      </div>
    </div>

    <div class="services-section">
      <table class="services-table">
        <thead>
          <tr>
            <th style="width: 60%;">Pakalpojuma nosaukums</th>
            <th style="width: 20%;">Daudzums</th>
            <th style="width: 20%;">Cena (€)</th>
          </tr>
        </thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td class="service-name">{{.Name}}</td>
            <td>{{.Quantity}}</td>
            <td class="service-price">€{{money .Total}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>

    <div class="totals-section">
      <div class="totals-card">
        <div class="total-row">
          <span class="total-label">Starpsumma:</span>
          <span class="total-amount">€{{money .Subtotal}}</span>
        </div>
        <div class="total-row">
          <span class="total-label">{{.TaxLabel}}:</span>
          <span class="total-amount">€{{money .TaxAmount}}</span>
        </div>
        <div class="total-row grand-total">
          <span class="total-label">Kopā:</span>
          <span class="total-amount">€{{money .GrandTotal}}</span>
        </div>
      </div>
    </div>
  </div>

  <div class="footer">
    <div class="footer-content">
      <div class="footer-left">
        <div class="footer-text"><strong>{{.Sender.Name}}</strong> - {{.Sender.Tagline}}</div>
        <div class="footer-note">Paldies par jūsu uzticību!</div>
      </div>
      <div class="footer-right">
        <div class="payment-info">
          <div class="payment-title">Maksājuma informācija</div>
          <div class="payment-details">
            <strong>Konts:</strong> {{.Sender.BankAccount}}<br>
            <strong>Banka:</strong> {{.Sender.BankName}}<br>
            <strong>Maksājuma mērķis:</strong> Rēķins #{{.Number}}
          </div>
        </div>
      </div>
    </div>
  </div>
</div>
</body>
</html>
`
