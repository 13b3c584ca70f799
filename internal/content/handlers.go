package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vovakirdan/tummy-arcade/internal/storage"
)

// User is the public account record.
type User struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Card is a recipe or game listing entry.
type Card struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Hero is the landing banner.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorBody struct {
	Error string `json:"error"`
}

func publicUser(u storage.User) User {
	return User{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, ErrBadRequest, msgBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, ErrBadRequest, msgMissingFields)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		writeError(w, ErrBadRequest, msgBadRequest)
		return
	}
	if err != nil {
		s.logger.Error("cannot hash password", "error", err)
		writeError(w, ErrServer, msgServer)
		return
	}

	id, err := s.store.CreateUser(r.Context(), req.Name, req.Email, string(hash))
	if errors.Is(err, storage.ErrDuplicate) {
		writeError(w, ErrDuplicateIdentity, msgDuplicate)
		return
	}
	if err != nil {
		s.logger.Error("cannot create user", "error", err)
		writeError(w, ErrServer, msgServer)
		return
	}

	s.respondWithToken(w, "User registered", User{ID: id, Name: req.Name, Email: req.Email})
	s.tracker.Auth("signup")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, ErrBadRequest, msgBadRequest)
		return
	}

	u, err := s.store.UserByEmail(r.Context(), req.Email)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, ErrNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		s.logger.Error("cannot look up user", "error", err)
		writeError(w, ErrServer, msgServer)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, ErrInvalidCredentials, msgBadPassword)
		return
	}

	s.respondWithToken(w, "Login successful", publicUser(u))
	s.tracker.Auth("login")
}

func (s *Server) respondWithToken(w http.ResponseWriter, msg string, u User) {
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		s.logger.Error("cannot issue token", "error", err)
		writeError(w, ErrServer, msgServer)
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{Message: msg, Token: token, User: u})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || raw == "" {
		writeError(w, ErrInvalidCredentials, msgInvalidToken)
		return
	}

	id, err := s.tokens.Verify(raw)
	if err != nil {
		writeError(w, ErrInvalidCredentials, msgInvalidToken)
		return
	}

	u, err := s.store.UserByID(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, ErrNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		s.logger.Error("cannot look up user", "error", err)
		writeError(w, ErrServer, msgServer)
		return
	}

	writeJSON(w, http.StatusOK, publicUser(u))
}

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	cards, err := s.store.ListRecipes(r.Context())
	s.writeCards(w, cards, err)
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	cards, err := s.store.ListGames(r.Context())
	s.writeCards(w, cards, err)
}

func (s *Server) writeCards(w http.ResponseWriter, cards []storage.Card, err error) {
	if err != nil {
		s.logger.Error("cannot list content", "error", err)
		writeError(w, ErrServer, msgServer)
		return
	}

	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = Card{ID: c.ID, Title: c.Title, Description: c.Description, ImageURL: c.ImageURL}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHero(w http.ResponseWriter, r *http.Request) {
	h, err := s.store.Hero(r.Context())
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, ErrNotFound, msgHeroNotFound)
		return
	}
	if err != nil {
		s.logger.Error("cannot load hero", "error", err)
		writeError(w, ErrServer, msgServer)
		return
	}
	writeJSON(w, http.StatusOK, Hero{Title: h.Title, Subtitle: h.Subtitle, ImageURL: h.ImageURL})
}
