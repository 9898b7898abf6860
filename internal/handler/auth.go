package handler

import (
	"encoding/json"
	"net/http"
)

// registerRequest is the POST /register body. All fields are required.
type registerRequest struct {
	Name     *string `json:"nome"`
	Email    *string `json:"email"`
	Password *string `json:"senha"`
}

// registerResponse carries the new account's id.
type registerResponse struct {
	Mensagem  string `json:"mensagem"`
	UsuarioID int64  `json:"usuarioId"`
}

// loginRequest is the POST /login body.
type loginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"senha"`
}

// loginResponse carries the issued bearer token.
type loginResponse struct {
	Token string `json:"token"`
}

// Register handles POST /register.
// 400 for a missing or blank field and for an already-registered email;
// 200 with the new user id on success.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if body.Name == nil || body.Email == nil || body.Password == nil {
		writeError(w, http.StatusBadRequest, "Todos os campos são obrigatórios")
		return
	}

	id, err := s.auth.Register(r.Context(), *body.Name, *body.Email, *body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{Mensagem: "Usuário registrado", UsuarioID: id})
}

// Login handles POST /login.
// 400 for a missing field, 401 for bad credentials — unknown email and wrong
// password produce the identical response. 200 with a bearer token valid for
// two hours on success.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if body.Email == nil || body.Password == nil {
		writeError(w, http.StatusBadRequest, "Email e senha são obrigatórios")
		return
	}

	token, err := s.auth.Login(r.Context(), *body.Email, *body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
