package renderer

import (
	"bytes"
	"fmt"

	"github.com/smartviews/pos"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Receipt renders a sale as a markdown receipt document. It is a pure
// function of the sale and never touches the ledger.
func Receipt(s pos.Sale) string {
	return renderTemplate("receipt", "receipt.md", s)
}

// receiptShell is the printable document wrapper. It carries its styling
// inline so the file has no external dependency and can be sent straight to
// a printer.
const receiptShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>Receipt %s</title>
<style>
body{font-family:Arial,sans-serif;padding:12px;max-width:480px}
h1{margin:0;font-size:1.4em}
table{width:100%%;border-collapse:collapse}
td,th{padding:6px;border-bottom:1px solid #eee;text-align:left}
td:nth-child(n+2),th:nth-child(n+2){text-align:right}
p{color:#444}
</style>
</head>
<body>
%s</body>
</html>
`

// ReceiptHTML renders a sale as a self-contained printable HTML document,
// converting the markdown receipt with goldmark (GFM tables enabled).
func ReceiptHTML(s pos.Sale) (string, error) {
	var body bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(Receipt(s)), &body); err != nil {
		return "", fmt.Errorf("cannot convert receipt %q to HTML: %w", s.ID, err)
	}
	return fmt.Sprintf(receiptShell, s.ID, body.String()), nil
}
