package notifications

import (
	"html/template"

	"github.com/shopspring/decimal"
)

var funcs = template.FuncMap{
	"eur": func(d decimal.Decimal) string { return d.StringFixed(2) + " €" },
}

// Šablon mejla prodavcu — obaveštenje o novoj porudžbini.
var merchantTemplate = template.Must(template.New("merchant").Funcs(funcs).Parse(`
<h1>Nova porudžbina je primljena!</h1>
<h2>Detalji porudžbine:</h2>
<p><strong>Broj porudžbine:</strong> {{.OrderID}}</p>
<p><strong>Ukupan iznos:</strong> {{eur .Total}}</p>

<h3>Kupac:</h3>
<p>Ime: {{.Customer.Name}}</p>
<p>Email: {{.Customer.Email}}</p>
<p>Adresa: {{.Customer.Address}}</p>
<p>Grad: {{.Customer.City}}</p>
<p>Poštanski broj: {{.Customer.PostalCode}}</p>
<p>Država: {{.Customer.Country}}</p>

<h3>Proizvodi:</h3>
<ul>
{{range .Items}}  <li>
    {{.Name}} - Veličina: {{.Size}}
    <br>Količina: {{.Quantity}}
    <br>Cena: {{eur .Price}}
  </li>
{{end}}</ul>

<p><strong>Dostava:</strong> {{eur .DeliveryFee}}</p>
`))

// Šablon mejla kupcu — potvrda porudžbine.
var customerTemplate = template.Must(template.New("customer").Funcs(funcs).Parse(`
<!DOCTYPE html>
<html lang="sr">
<head>
	<meta charset="UTF-8">
	<title>Potvrda porudžbine</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Potvrda vaše porudžbine</h2>
		<p>Poštovani {{.Customer.Name}},</p>
		<p>Vaša porudžbina <strong>{{.OrderID}}</strong> je uspešno potvrđena.</p>

		<h3>Detalji porudžbine</h3>
		<table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Proizvod</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Veličina</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Količina</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Cena</th>
				</tr>
			</thead>
			<tbody>
			{{range .Items}}	<tr>
					<td style="padding: 10px; border: 1px solid #ddd;">{{.Name}}</td>
					<td style="padding: 10px; border: 1px solid #ddd;">{{.Size}}</td>
					<td style="padding: 10px; border: 1px solid #ddd;">{{.Quantity}}</td>
					<td style="padding: 10px; border: 1px solid #ddd;">{{eur .Price}}</td>
				</tr>
			{{end}}</tbody>
		</table>

		<p>Dostava: {{eur .DeliveryFee}}</p>
		<p style="font-size: 18px;"><strong>Ukupno: {{eur .Total}}</strong></p>

		<p>Porudžbina se šalje na adresu: {{.Customer.Address}}, {{.Customer.PostalCode}} {{.Customer.City}}, {{.Customer.Country}}.</p>

		<p style="margin-top: 30px; color: #555;">
			Srdačan pozdrav,<br>
			<strong>ST Racing Shop</strong>
		</p>
	</div>
</body>
</html>
`))
