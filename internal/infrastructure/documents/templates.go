package documents

// Default HTML templates for the two billing document styles. Layout is
// deliberately minimal; societies that need letterhead styling can ship
// their own templates via NewTemplateRendererWithTemplates.

const defaultBillTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Maintenance Bill {{.Bill.BillMonth}}/{{.Bill.BillYear}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
td, th { border: 1px solid #999; padding: 4px 8px; text-align: left; }
.total { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Project.Name}}</h1>
<p>{{.Project.Address}}</p>
<h2>Maintenance Bill - {{.Bill.BillMonth}}/{{.Bill.BillYear}} ({{.Bill.FinancialYear}})</h2>
<p>Unit: {{.Unit.UnitNumber}}{{if .Unit.OwnerName}} - {{.Unit.OwnerName}}{{end}}</p>
<table>
<tr><th>Item</th><th>Amount</th></tr>
<tr><td>Maintenance charge</td><td>{{formatMoney .Bill.BaseCharge}}</td></tr>
<tr><td>NA tax</td><td>{{formatMoney .Bill.Charges.NATax}}</td></tr>
<tr><td>R.D. / N.A.</td><td>{{formatMoney .Bill.Charges.RDNA}}</td></tr>
<tr><td>Cable</td><td>{{formatMoney .Bill.Charges.Cable}}</td></tr>
<tr><td>Other charges</td><td>{{formatMoney .Bill.Charges.OtherCharges}}</td></tr>
<tr><td>Previous arrears</td><td>{{formatMoney .Bill.PreviousArrears}}</td></tr>
<tr><td>Penalty</td><td>{{formatMoney .Bill.Penalty}}</td></tr>
<tr><td>Discount</td><td>-{{formatMoney .Bill.Discount}}</td></tr>
<tr class="total"><td>Total payable</td><td>{{formatMoney .Bill.Total}}</td></tr>
</table>
<p>Due date: {{formatDate .Bill.DueDate}}</p>
{{if .Project.BankDetails.BankName}}
<p>Pay to: {{.Project.BankDetails.BankName}}, A/c {{.Project.BankDetails.AccountNumber}}, IFSC {{.Project.BankDetails.IFSCCode}}{{if .Project.BankDetails.BranchName}}, {{.Project.BankDetails.BranchName}}{{end}}</p>
{{end}}
</body>
</html>`

const defaultLetterTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Maintenance Letter {{.Letter.FinancialYear}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
td, th { border: 1px solid #999; padding: 4px 8px; text-align: left; }
.total { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Project.Name}}</h1>
<p>{{.Project.Address}}</p>
<h2>Annual Maintenance - {{.Letter.FinancialYear}}</h2>
<p>Date: {{formatDate .Letter.LetterDate}}</p>
<p>Unit: {{.Unit.UnitNumber}}{{if .Unit.OwnerName}} - {{.Unit.OwnerName}}{{end}}</p>
<table>
<tr><th>Item</th><th>Amount</th></tr>
<tr><td>Annual maintenance</td><td>{{formatMoney .Letter.BaseAmount}}</td></tr>
{{range .Letter.AddOns}}
<tr><td>{{.Name}}</td><td>{{formatMoney .Amount}}</td></tr>
{{end}}
<tr><td>Penalty</td><td>{{formatMoney .Letter.Penalty}}</td></tr>
<tr><td>Discount</td><td>-{{formatMoney .Letter.Discount}}</td></tr>
<tr class="total"><td>Total payable</td><td>{{formatMoney .Letter.FinalAmount}}</td></tr>
</table>
<p>Due date: {{formatDate .Letter.DueDate}}</p>
{{if .Project.BankDetails.BankName}}
<p>Pay to: {{.Project.BankDetails.BankName}}, A/c {{.Project.BankDetails.AccountNumber}}, IFSC {{.Project.BankDetails.IFSCCode}}{{if .Project.BankDetails.BranchName}}, {{.Project.BankDetails.BranchName}}{{end}}</p>
{{end}}
</body>
</html>`
