package httpapi

import (
	"encoding/json"
	"net/http"

	formbox "github.com/Jumpaku/go-formbox"
	"github.com/Jumpaku/go-formbox/errors"
)

func decodeBody(r *http.Request, into any) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return errors.NewFieldError(errors.ErrTypeMismatch, -1, "request body is not valid JSON")
	}
	return nil
}

type credentialsBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenBody struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body credentialsBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	session, err := s.auth.Signup(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, tokenBody{Message: "Signup successful", Token: session.Token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body credentialsBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	session, err := s.auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tokenBody{Message: "Login successful", Token: session.Token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if session, ok := s.bearerSession(r); ok {
		s.auth.Logout(session.Token)
	}
	s.writeJSON(w, http.StatusOK, messageBody{Message: "Logged out"})
}

type createFormBody struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Fields      []formbox.Field `json:"fields"`
}

func (s *Server) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	var body createFormBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	form, err := formbox.NewForm(body.Title, body.Description, body.Fields)
	if err != nil {
		s.writeError(w, err)
		return
	}
	// Owner attribution is optional; anonymous creation is allowed.
	if session, ok := s.bearerSession(r); ok {
		form.CreatedBy = session.UserID
	}
	stored, err := s.store.InsertForm(r.Context(), form)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, struct {
		Message string       `json:"message"`
		Form    formbox.Form `json:"form"`
	}{Message: "Form created successfully", Form: stored})
}

func (s *Server) handleListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := s.store.ListForms(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, forms)
}

func (s *Server) handleGetForm(w http.ResponseWriter, r *http.Request) {
	form, err := s.store.FindForm(r.Context(), formbox.FormID(r.PathValue("id")))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		Form formbox.Form `json:"form"`
	}{Form: form})
}

type submitBody struct {
	FormID  formbox.FormID `json:"formId"`
	Answers map[string]any `json:"answers"`
}

func (s *Server) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	var body submitBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	if body.FormID == "" {
		s.writeJSON(w, http.StatusBadRequest, messageBody{Message: "Form ID and answers are required."})
		return
	}
	form, err := s.store.FindForm(r.Context(), body.FormID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	response, err := formbox.NewResponse(form, body.Answers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	stored, err := s.store.InsertResponse(r.Context(), response)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, struct {
		Message  string           `json:"message"`
		Response formbox.Response `json:"response"`
	}{Message: "Response submitted successfully", Response: stored})
}

func (s *Server) handleGetResponses(w http.ResponseWriter, r *http.Request) {
	form, err := s.store.FindForm(r.Context(), formbox.FormID(r.PathValue("id")))
	if err != nil {
		s.writeError(w, err)
		return
	}
	responses, err := s.store.ListResponses(r.Context(), form.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		Responses []formbox.Response `json:"responses"`
		Result    formbox.Result     `json:"result"`
	}{Responses: responses, Result: formbox.BuildResult(form, responses)})
}
