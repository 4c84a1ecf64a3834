package mail

import (
	"fmt"
	"time"

	"github.com/reqsync/reqsync-api/schema"
)

// SendVolunteerWelcome greets a user who just joined the volunteer team.
func (c *Client) SendVolunteerWelcome(toEmail, volunteerName string) error {
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 10px;">
<h2>Hello %s,</h2>
<p>Thank you for joining our volunteer program! We are thrilled to have you on board.</p>
<p>At ReqSync you can contribute to meaningful requests and collaborate with other volunteers.</p>
<p>To get started, log in to your account and connect with the team.</p>
<p>Looking forward to seeing you in action!</p>
<p>Best regards,<br><strong>ReqSync Team</strong></p>
</div>`, volunteerName)

	return c.send(toEmail, "Welcome to the ReqSync Volunteer Team!", body)
}

// SendHelpRequestAlert tells a volunteer about a newly posted help request.
func (c *Client) SendHelpRequestAlert(req *schema.HelpRequest, toEmail, volunteerName string) error {
	body := fmt.Sprintf(`<p>Dear %s,</p>
<p>You have received a new help request from someone in need. Below are the details:</p>
<h2 style="color: #ff5733;">Help Type: %s</h2>
<p><strong>Requester's Name:</strong> %s<br>
<strong>Email:</strong> %s<br>
<strong>Phone Number:</strong> %s<br>
<strong>Location:</strong> %s</p>
<h3>Message:</h3>
<p>%s</p>
<p>Please reach out to them as soon as possible to provide the necessary assistance.</p>
<p>Best regards,<br><strong>ReqSync Team</strong></p>`,
		volunteerName, req.HelpType, req.Name, req.UserEmail, req.Phone, req.Area, req.Message)

	return c.send(toEmail, "Urgent Help Request - "+req.HelpType, body)
}

// SendIssueReportedAlert tells a volunteer that a requester escalated an
// unresolved help request.
func (c *Client) SendIssueReportedAlert(issue *schema.RequestHelperIssue, req *schema.HelpRequest, toEmail string) error {
	body := fmt.Sprintf(`<p>Dear volunteer,</p>
<p>A help request is still unresolved and its requester has reported an issue.</p>
<p><strong>Requester:</strong> %s<br>
<strong>Help Type:</strong> %s<br>
<strong>Reported At:</strong> %s</p>
<h3>Issue Description:</h3>
<p>%s</p>
<p>If you can step in, please reach out to the requester as soon as possible.</p>
<p>Best regards,<br><strong>ReqSync Team</strong></p>`,
		req.Name, req.HelpType, issue.ReportedAt.Format(time.RFC1123), issue.Description)

	return c.send(toEmail, "Unresolved Help Request Escalated - "+req.HelpType, body)
}

// SendRequestFulfilled confirms to a requester that their request has been
// resolved.
func (c *Client) SendRequestFulfilled(toEmail, requesterName, volunteerName, helpType string, fulfilledAt time.Time) error {
	body := fmt.Sprintf(`<p>Dear %s,</p>
<p>We are happy to inform you that your help request for <strong>%s</strong> has been fulfilled by <strong>%s</strong>.</p>
<h4>Request Details:</h4>
<ul>
<li><b>Help Type:</b> %s</li>
<li><b>Fulfilled On:</b> %s</li>
</ul>
<p>We hope your issue has been resolved to your satisfaction.</p>
<p>Best regards,<br><strong>The ReqSync Team</strong></p>`,
		requesterName, helpType, volunteerName, helpType, fulfilledAt.Format(time.RFC1123))

	return c.send(toEmail, "Your Help Request Has Been Fulfilled!", body)
}
