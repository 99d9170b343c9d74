package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

const contactNotifyTpl = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
</head>
<body style="font-family:Arial,sans-serif;line-height:1.6;color:#333;margin:0">
  <div style="max-width:600px;margin:0 auto;padding:20px">
    <div style="background-color:#0c4a6e;color:#fff;padding:20px;text-align:center">
      <h2 style="margin:0">Nouveau message de contact</h2>
    </div>
    <div style="background-color:#f9fafb;padding:20px">
      <div style="margin-bottom:15px">
        <div style="font-weight:bold;color:#0c4a6e">Nom :</div>
        <div style="margin-top:5px;padding:10px;background-color:#fff;border-left:3px solid #b45309">{{.Name}}</div>
      </div>
      <div style="margin-bottom:15px">
        <div style="font-weight:bold;color:#0c4a6e">Email :</div>
        <div style="margin-top:5px;padding:10px;background-color:#fff;border-left:3px solid #b45309">{{.Email}}</div>
      </div>
      <div style="margin-bottom:15px">
        <div style="font-weight:bold;color:#0c4a6e">Téléphone :</div>
        <div style="margin-top:5px;padding:10px;background-color:#fff;border-left:3px solid #b45309">{{.Phone}}</div>
      </div>
      <div style="margin-bottom:15px">
        <div style="font-weight:bold;color:#0c4a6e">Sujet :</div>
        <div style="margin-top:5px;padding:10px;background-color:#fff;border-left:3px solid #b45309">{{.Subject}}</div>
      </div>
      <div style="margin-bottom:15px">
        <div style="font-weight:bold;color:#0c4a6e">Message :</div>
        <div style="margin-top:5px;padding:10px;background-color:#fff;border-left:3px solid #b45309">{{.Message}}</div>
      </div>
    </div>
  </div>
</body>
</html>`

const contactConfirmTpl = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
</head>
<body style="font-family:Arial,sans-serif;line-height:1.6;color:#333;margin:0">
  <div style="max-width:600px;margin:0 auto;padding:20px">
    <div style="background-color:#0c4a6e;color:#fff;padding:20px;text-align:center">
      <h2 style="margin:0">Espace Agenda</h2>
    </div>
    <div style="padding:30px;background-color:#f9fafb">
      <p>Bonjour {{.Name}},</p>
      <p>Nous avons bien reçu votre message et nous vous en remercions.</p>
      <p>Notre équipe reviendra vers vous dans les plus brefs délais, généralement sous 24 heures ouvrées.</p>
      <p>En attendant, n'hésitez pas à consulter notre site pour découvrir toutes les fonctionnalités d'Espace Agenda.</p>
      <p>Cordialement,<br><strong>L'équipe Espace Agenda</strong></p>
    </div>
    <div style="padding:20px;text-align:center;font-size:12px;color:#6b7280">
      <p>Espace Agenda - Solution de prise de rendez-vous en ligne<br>
      123 Avenue de la République, 75011 Paris<br>
      01 23 45 67 89 | contact@espaceagenda.fr</p>
    </div>
  </div>
</body>
</html>`

// ContactNotifyData is the data for the team-facing alert email.
type ContactNotifyData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendContactNotify sends the new-submission alert to the team inbox.
func (s *Sender) SendContactNotify(data ContactNotifyData) error {
	if data.Phone == "" {
		data.Phone = "Non renseigné"
	}
	html, err := renderTemplate(contactNotifyTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{s.cfg.ContactEmail},
		Subject: fmt.Sprintf("Nouveau contact : %s", data.Subject),
		HTML:    html,
	})
}

// SendContactConfirm sends the automatic acknowledgement to the customer.
func (s *Sender) SendContactConfirm(to, name string) error {
	html, err := renderTemplate(contactConfirmTpl, struct{ Name string }{Name: name})
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: "Votre message a bien été reçu - Espace Agenda",
		HTML:    html,
	})
}
