package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Maxito7/marea_backend/internal/domain"
)

var reasonLabels = map[domain.FallbackReason]string{
	domain.ReasonOffDomain:     "Fuera de tema",
	domain.ReasonNoMatch:       "Sin coincidencias",
	domain.ReasonLowConfidence: "Baja confianza",
}

var digestTemplate = template.Must(template.New("digest").Funcs(template.FuncMap{
	"reason": func(r domain.FallbackReason) string {
		if label, ok := reasonLabels[r]; ok {
			return label
		}
		return string(r)
	},
	"date": func(layout string, t time.Time) string {
		return t.Format(layout)
	},
}).Parse(`<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8"><title>Consultas sin respuesta</title></head>
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px;">
		<tr>
			<td style="background-color: #1d4e89; padding: 30px 20px; text-align: center;">
				<h1 style="color: #ffffff; margin: 0; font-size: 24px;">Consultas sin respuesta del chat</h1>
				<p style="color: #ffffff; margin: 10px 0 0 0;">{{date "02/01/2006 15:04" .Since}} – {{date "02/01/2006 15:04" .Until}}</p>
			</td>
		</tr>
		<tr>
			<td style="padding: 30px;">
				<p>Total de mensajes sin respuesta: <strong>{{.Total}}</strong></p>
				<table width="100%" cellpadding="0" cellspacing="0" style="border: 1px solid #e0e0e0;">
					<thead>
						<tr style="background-color: #1d4e89; color: #ffffff;">
							<th style="padding: 10px; text-align: left;">Mensaje</th>
							<th style="padding: 10px; text-align: left;">Motivo</th>
							<th style="padding: 10px; text-align: right;">Veces</th>
						</tr>
					</thead>
					<tbody>
					{{range .Items}}
						<tr>
							<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">{{.Message}}</td>
							<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">{{reason .Reason}}</td>
							<td style="padding: 10px; border-bottom: 1px solid #e0e0e0; text-align: right;">{{.Count}}</td>
						</tr>
					{{end}}
					</tbody>
				</table>
				<p style="color: #666; font-size: 13px;">Si una pregunta se repite, considera agregarla a las preguntas frecuentes.</p>
			</td>
		</tr>
	</table>
</body>
</html>
`))

func renderDigestHTML(digest domain.FallbackDigest) (string, error) {
	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, digest); err != nil {
		return "", fmt.Errorf("error al generar el resumen: %w", err)
	}
	return buf.String(), nil
}
