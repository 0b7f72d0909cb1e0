package ws

import (
	"log"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/google/uuid"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

// NotifyQuestionCreated goes to every connected client so discovery feeds can
// refresh without polling.
func (n *HubNotifier) NotifyQuestionCreated(q *domain.Question) {
	evt, err := NewEvent(EventTypeQuestionCreated, &q.ID, QuestionCreatedPayload{Question: *q})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.BroadcastAll(evt)
}

func (n *HubNotifier) NotifyVolunteer(req *domain.AnswerRequest) {
	evt, err := NewEvent(EventTypeVolunteerNew, &req.QuestionID, VolunteerPayload{AnswerRequest: *req})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.BroadcastToQuestion(req.QuestionID, evt, nil)
}

func (n *HubNotifier) NotifyVolunteerUpdated(req *domain.AnswerRequest) {
	evt, err := NewEvent(EventTypeVolunteerUpdated, &req.QuestionID, VolunteerPayload{AnswerRequest: *req})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.BroadcastToQuestion(req.QuestionID, evt, nil)
}

func (n *HubNotifier) NotifyAnswer(a *domain.Answer) {
	evt, err := NewEvent(EventTypeAnswerNew, &a.QuestionID, AnswerPayload{Answer: *a})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.BroadcastToQuestion(a.QuestionID, evt, nil)
}

func (n *HubNotifier) NotifyAnswerAccepted(questionID, answerID uuid.UUID) {
	evt, err := NewEvent(EventTypeAnswerAccepted, &questionID, AnswerAcceptedPayload{QuestionID: questionID, AnswerID: answerID})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.BroadcastToQuestion(questionID, evt, nil)
}
