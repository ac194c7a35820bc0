// Package receipt renders order receipts as HTML and optionally PDF.
package receipt

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

// LineData is a single purchased item on the receipt.
type LineData struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// Data carries everything the receipt template needs.
type Data struct {
	OrderID      int64
	OrderDate    time.Time
	Status       string
	CustomerName string
	Email        string
	Lines        []LineData
	Total        decimal.Decimal
	Currency     string
	StoreName    string
}

var receiptFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
}

var receiptTemplate = template.Must(template.New("receipt").Funcs(receiptFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Receipt #{{.OrderID}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1a1a1a; margin: 40px; }
  h1 { font-size: 20px; margin-bottom: 4px; }
  .meta { color: #666; font-size: 13px; margin-bottom: 24px; }
  table { width: 100%; border-collapse: collapse; font-size: 14px; }
  th { text-align: left; border-bottom: 2px solid #1a1a1a; padding: 8px 4px; }
  td { border-bottom: 1px solid #ddd; padding: 8px 4px; }
  .num { text-align: right; }
  .total td { border-bottom: none; font-weight: bold; padding-top: 16px; }
  .status { text-transform: uppercase; font-size: 12px; letter-spacing: 1px; }
</style>
</head>
<body>
<h1>{{.StoreName}}</h1>
<div class="meta">
  Receipt for order #{{.OrderID}}<br>
  {{.OrderDate.Format "January 2, 2006 15:04"}}<br>
  {{.CustomerName}} &lt;{{.Email}}&gt;<br>
  <span class="status">{{.Status}}</span>
</div>
<table>
  <thead>
    <tr><th>Item</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Amount</th></tr>
  </thead>
  <tbody>
    {{range .Lines}}
    <tr>
      <td>{{.ProductName}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{money .UnitPrice}} {{$.Currency}}</td>
      <td class="num">{{money .LineTotal}} {{$.Currency}}</td>
    </tr>
    {{end}}
    <tr class="total">
      <td colspan="3">Total</td>
      <td class="num">{{money .Total}} {{.Currency}}</td>
    </tr>
  </tbody>
</table>
</body>
</html>
`))

// RenderHTML produces the receipt document for an order.
func RenderHTML(data Data) (string, error) {
	if data.StoreName == "" {
		data.StoreName = "NexaShop"
	}
	if data.Currency == "" {
		data.Currency = "USD"
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("receipt: render template: %w", err)
	}
	return buf.String(), nil
}
