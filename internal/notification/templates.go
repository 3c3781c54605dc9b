package notification

import (
	"bytes"
	"html/template"
	"strings"
	"time"
)

// Template is a rendered email: subject plus HTML body.
type Template struct {
	Subject string
	HTML    string
}

// IST is the organization's local time zone.
var IST = time.FixedZone("IST", 5*60*60+30*60)

const signature = `<p>Best regards,<br>Indian Red Cross Society - Tripura State Branch</p>`

var (
	volunteerWelcomeTmpl = template.Must(template.New("volunteer_welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #DC2626;">Welcome to Indian Red Cross Society - Tripura!</h2>
  <p>Dear {{.Name}},</p>
  <p>Thank you for registering as a volunteer with us. Your application has been received and is currently under review.</p>
  <p>We appreciate your willingness to serve the community. Our team will review your application and get back to you soon.</p>
  <p><strong>What happens next?</strong></p>
  <ul>
    <li>Our team will review your application</li>
    <li>You will receive an email once your application is approved</li>
    <li>We will contact you with volunteer opportunities</li>
  </ul>
  <p>If you have any questions, feel free to contact us.</p>
  ` + signature + `
</div>`))

	memberWelcomeTmpl = template.Must(template.New("member_welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #DC2626;">Thank You for Joining Us!</h2>
  <p>Dear {{.Name}},</p>
  <p>Thank you for applying for {{.MembershipType}} membership with Indian Red Cross Society - Tripura.</p>
  <p>Your application has been received and is currently under review by our team.</p>
  <p><strong>Membership Benefits:</strong></p>
  <ul>
    <li>Be part of a humanitarian organization</li>
    <li>Participate in community service activities</li>
    <li>Access to training programs</li>
    <li>Networking opportunities</li>
  </ul>
  <p>We will notify you once your membership is approved.</p>
  ` + signature + `
</div>`))

	contactAckTmpl = template.Must(template.New("contact_ack").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #DC2626;">Thank You for Contacting Us</h2>
  <p>Dear {{.Name}},</p>
  <p>We have received your message regarding: <strong>{{.Subject}}</strong></p>
  <p>Our team will review your message and get back to you as soon as possible.</p>
  <p>Thank you for reaching out to Indian Red Cross Society - Tripura.</p>
  ` + signature + `
</div>`))

	adminNoticeTmpl = template.Must(template.New("admin_notice").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #DC2626;">New {{.Kind}} Registration</h2>
  <p>A new {{.Kind}} has registered on the website:</p>
  <ul>
    <li><strong>Name:</strong> {{.Name}}</li>
    <li><strong>Email:</strong> {{.Email}}</li>
    <li><strong>Time:</strong> {{.Time}}</li>
  </ul>
  <p>Please log in to the admin portal to review this registration.</p>
  <p><a href="{{.PortalURL}}" style="background-color: #DC2626; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Go to Admin Portal</a></p>
</div>`))

	acceptedTmpl = template.Must(template.New("accepted").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; line-height: 1.6;">
  <div style="text-align: center; margin-bottom: 30px; padding-bottom: 20px; border-bottom: 2px solid #DC2626;">
    <h2 style="color: #DC2626; margin: 0; font-size: 24px;">Indian Red Cross Society</h2>
    <p style="color: #666; margin: 5px 0; font-size: 14px;">Tripura State Branch</p>
  </div>
  <p>Dear {{.Name}},</p>
  <p>We are pleased to inform you that your application has been successfully accepted by the Indian Red Cross Society, Tripura Branch.</p>
  <p>Thank you for your interest in contributing as a volunteer/member. Our team will reach out to you shortly with further details and next steps.</p>
  <p>We appreciate your willingness to support humanitarian efforts and serve the community.</p>
  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e0e0e0;">
    <p>Warm regards,<br><strong>Indian Red Cross Society</strong><br>Tripura State Branch<br>Email: ircstrp@gmail.com</p>
  </div>
</div>`))

	statusUpdateTmpl = template.Must(template.New("status_update").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: {{if .Approved}}#16A34A{{else}}#DC2626{{end}};">Application {{if .Approved}}Approved!{{else}}Status Update{{end}}</h2>
  <p>Dear {{.Name}},</p>
  <p>Your {{.Kind}} application status has been updated to: <strong>{{.Status}}</strong></p>
  {{if .Approved}}<p>Congratulations! We are excited to have you as part of our team.</p>
  <p>We will contact you soon with next steps and opportunities to get involved.</p>
  {{else}}<p>If you have any questions, please feel free to contact us.</p>{{end}}
  ` + signature + `
</div>`))
)

func render(subject string, tmpl *template.Template, data interface{}) Template {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// The templates are static and only interpolate strings.
		panic(err)
	}
	return Template{Subject: subject, HTML: strings.TrimSpace(buf.String())}
}

// VolunteerWelcome acknowledges a volunteer application.
func VolunteerWelcome(name string) Template {
	return render("Welcome to Indian Red Cross Society - Tripura", volunteerWelcomeTmpl,
		struct{ Name string }{name})
}

// MemberWelcome acknowledges a membership application.
func MemberWelcome(name, membershipType string) Template {
	return render("Membership Application Received - Indian Red Cross Society", memberWelcomeTmpl,
		struct{ Name, MembershipType string }{name, membershipType})
}

// ContactAcknowledgment confirms a contact-form message was received.
func ContactAcknowledgment(name, subject string) Template {
	return render("We received your message - Indian Red Cross Society", contactAckTmpl,
		struct{ Name, Subject string }{name, subject})
}

// AdminNewRegistration tells the administrators about a new submission.
// kind is a display label such as "Volunteer".
func AdminNewRegistration(kind, name, email, portalURL string, at time.Time) Template {
	return render("New "+kind+" Registration - Action Required", adminNoticeTmpl, struct {
		Kind, Name, Email, Time, PortalURL string
	}{kind, name, email, at.In(IST).Format("02/01/2006, 3:04:05 pm"), portalURL})
}

// ApplicationAccepted is sent when an application is approved.
func ApplicationAccepted(name string) Template {
	return render("Application Approved - Indian Red Cross Society, Tripura", acceptedTmpl,
		struct{ Name string }{name})
}

// StatusUpdate announces any other status change.
func StatusUpdate(name, kind, status string) Template {
	approved := status == "approved"
	subject := "Application Update - Indian Red Cross Society"
	if approved {
		subject = "Application Approved - Indian Red Cross Society"
	}
	return render(subject, statusUpdateTmpl, struct {
		Name, Kind, Status string
		Approved           bool
	}{name, kind, status, approved})
}
