package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	invoicedto "wifi_billing/internal/api/invoice/dto"
	invoicesvc "wifi_billing/internal/api/invoice/service"
	"wifi_billing/internal/logger"
)

// defaultTemplateHTML là template hóa đơn mặc định, được seed khi collection trống
const defaultTemplateHTML = `
<!DOCTYPE html>
<html>
<head>
    <meta charset='UTF-8'>
    <style>
        body { font-family: Arial, sans-serif; padding: 40px; }
        .header { text-align: center; border-bottom: 3px solid #2563eb; padding-bottom: 20px; }
        .company { font-size: 24px; font-weight: bold; color: #1e40af; }
        .invoice-title { font-size: 32px; color: #2563eb; margin-top: 10px; }
        .info-section { margin-top: 30px; }
        .info-row { display: flex; justify-content: space-between; margin: 10px 0; }
        .label { font-weight: bold; }
        .table { width: 100%; border-collapse: collapse; margin-top: 30px; }
        .table th, .table td { border: 1px solid #ddd; padding: 12px; text-align: left; }
        .table th { background-color: #2563eb; color: white; }
        .total { font-size: 20px; font-weight: bold; text-align: right; margin-top: 20px; }
        .footer { margin-top: 50px; text-align: center; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class='header'>
        <div class='company'>WiFi Billing System</div>
        <div class='invoice-title'>INVOICE</div>
    </div>

    <div class='info-section'>
        <div class='info-row'>
            <div><span class='label'>Nomor Invoice:</span> {{invoice_number}}</div>
            <div><span class='label'>Tanggal:</span> {{date}}</div>
        </div>
        <div class='info-row'>
            <div><span class='label'>Jatuh Tempo:</span> {{due_date}}</div>
        </div>
    </div>

    <div class='info-section'>
        <h3>Pelanggan:</h3>
        <div><span class='label'>Nama:</span> {{name}}</div>
        <div><span class='label'>ID Pelanggan:</span> {{customer_id}}</div>
        <div><span class='label'>Alamat:</span> {{address}}</div>
        <div><span class='label'>WiFi ID:</span> {{wifi_id}}</div>
    </div>

    <table class='table'>
        <thead>
            <tr>
                <th>Deskripsi</th>
                <th>Paket</th>
                <th>Jumlah</th>
            </tr>
        </thead>
        <tbody>
            <tr>
                <td>Tagihan WiFi Bulanan</td>
                <td>{{package}}</td>
                <td>{{amount}}</td>
            </tr>
        </tbody>
    </table>

    <div class='total'>
        Total: {{amount}}
    </div>

    <div class='footer'>
        <p>Terima kasih atas kepercayaan Anda!</p>
        <p>Untuk pertanyaan, hubungi customer service kami.</p>
    </div>
</body>
</html>
`

// initDefaultData seed template hóa đơn mặc định khi collection templates còn trống
func initDefaultData(templates *invoicesvc.TemplateService) {
	log := logger.GetAppLogger()

	count, err := templates.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		log.Fatalf("Failed to count templates: %v", err)
	}
	if count > 0 {
		return
	}

	_, err = templates.Create(context.TODO(), &invoicedto.TemplateCreateInput{
		Name:        "Template Default",
		HTMLContent: defaultTemplateHTML,
		IsDefault:   true,
	})
	if err != nil {
		log.Fatalf("Failed to create default template: %v", err)
	}
	log.Info("Default invoice template created")
}
