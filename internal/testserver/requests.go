package testserver

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/matrimony-client/pkg/api"
)

func (s *Backend) handleSendRequest(w http.ResponseWriter, r *http.Request) {
	me := userIDFrom(r.Context())
	target := chi.URLParam(r, "id")

	var body api.SendRequestBody
	_ = decode(r, &body) // тело необязательно

	s.mu.Lock()
	defer s.mu.Unlock()

	receiver, ok := s.users[target]
	if !ok || target == me {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	for _, req := range s.requests {
		if req.Sender.ID == me && req.Receiver.ID == target && req.Status == api.RequestStatusPending {
			writeFailure(w, "Request already sent")
			return
		}
	}

	req := &api.ConnectionRequest{
		ID:        uuid.NewString(),
		Message:   body.Message,
		Status:    api.RequestStatusPending,
		Sender:    s.users[me].profile,
		Receiver:  receiver.profile,
		CreatedAt: now(),
	}
	s.requests[req.ID] = req

	out := *req
	writeJSON(w, http.StatusCreated, api.OK(&out))
}

func (s *Backend) handleListRequests(sent bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := userIDFrom(r.Context())
		status := api.RequestStatus(r.URL.Query().Get("status"))

		s.mu.Lock()
		var list []api.ConnectionRequest
		for _, req := range s.requests {
			owner := req.Receiver.ID
			if sent {
				owner = req.Sender.ID
			}
			if owner != me || (status != "" && req.Status != status) {
				continue
			}
			list = append(list, *req)
		}
		s.mu.Unlock()

		sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })

		page, total, more := paginate(list, r)
		writeOK(w, &api.RequestList{Requests: page, TotalCount: total, HasMore: more})
	}
}

func (s *Backend) handleAnswerRequest(status api.RequestStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := userIDFrom(r.Context())

		s.mu.Lock()
		defer s.mu.Unlock()

		req, ok := s.requests[chi.URLParam(r, "id")]
		if !ok || req.Receiver.ID != me {
			writeError(w, http.StatusNotFound, "request not found")
			return
		}
		if req.Status != api.RequestStatusPending {
			writeFailure(w, "Request already answered")
			return
		}

		req.Status = status
		if status == api.RequestStatusAccepted {
			s.ensureConversationLocked(req.Sender.ID, req.Receiver.ID)
		}

		out := *req
		writeOK(w, &out)
	}
}
