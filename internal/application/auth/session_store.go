// Package auth implementa el store de sesión: la única sesión viva del
// proceso, su creación por verificación de credenciales y las consultas de
// rol que consume el guard de navegación.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ServiCampo-api/internal/application/dto"
	"github.com/jhoicas/ServiCampo-api/internal/application/navigation"
	"github.com/jhoicas/ServiCampo-api/internal/domain"
	"github.com/jhoicas/ServiCampo-api/internal/domain/repository"
	"github.com/jhoicas/ServiCampo-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// sesionSnapshot es la forma persistida de la sesión (clave "auth").
type sesionSnapshot struct {
	Usuario *dto.UsuarioResponse `json:"usuario"`
	Token   string               `json:"token"`
}

// SessionStore posee la sesión viva del proceso. Solo este store la muta;
// el guard de navegación únicamente la lee. El rol solo tiene significado
// cuando hay token: sin token la sesión es anónima.
type SessionStore struct {
	mu        sync.Mutex
	usuarios  repository.UsuarioRepository
	snapshots repository.SnapshotRepository
	jwtCfg    JWTConfig

	usuario *dto.UsuarioResponse
	token   string
}

// NewSessionStore construye el store y restaura la sesión persistida si
// existe (equivalente al comportamiento persist del estado de la app).
func NewSessionStore(ctx context.Context, usuarios repository.UsuarioRepository, snapshots repository.SnapshotRepository, jwtCfg JWTConfig) (*SessionStore, error) {
	s := &SessionStore{usuarios: usuarios, snapshots: snapshots, jwtCfg: jwtCfg}
	datos, ok, err := snapshots.Load(ctx, repository.SnapshotAuth)
	if err != nil {
		return nil, fmt.Errorf("restaurar sesión: %w", err)
	}
	if ok {
		var snap sesionSnapshot
		if err := json.Unmarshal(datos, &snap); err != nil {
			return nil, fmt.Errorf("snapshot de sesión corrupto: %w", err)
		}
		s.usuario = snap.Usuario
		s.token = snap.Token
	}
	return s, nil
}

// Login verifica email y password contra el directorio (comparación exacta
// del email, hash bcrypt del password), emite un token nuevo y reemplaza la
// sesión del proceso. Un fallo devuelve ErrCredencialesInvalidas y deja
// cualquier sesión previa intacta.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	usuario, err := s.usuarios.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}

	token, err := jwt.Generate(s.jwtCfg.Secret, usuario.ID, usuario.Nombre, usuario.Role, s.jwtCfg.Issuer, s.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	identidad := dto.UsuarioResponse{
		ID:     usuario.ID,
		Email:  usuario.Email,
		Nombre: usuario.Nombre,
		Role:   usuario.Role,
		Avatar: usuario.Avatar,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.usuario = &identidad
	s.token = token
	if err := s.persist(ctx); err != nil {
		return &dto.LoginResponse{Token: token, Usuario: identidad}, err
	}
	return &dto.LoginResponse{Token: token, Usuario: identidad}, nil
}

// Logout limpia la sesión incondicionalmente. Es idempotente: cerrar una
// sesión inexistente no es un error.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usuario = nil
	s.token = ""
	return s.persist(ctx)
}

// IsAuthenticated informa si hay un token de sesión vigente.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// HasAnyRole informa si el rol de la sesión está dentro de candidatos.
// Siempre falso sin sesión autenticada.
func (s *SessionStore) HasAnyRole(candidatos ...string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.usuario == nil {
		return false
	}
	for _, r := range candidatos {
		if r == s.usuario.Role {
			return true
		}
	}
	return false
}

// Current devuelve la identidad de la sesión, o nil si no hay sesión.
func (s *SessionStore) Current() *dto.UsuarioResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.usuario == nil {
		return nil
	}
	u := *s.usuario
	return &u
}

// Sesion devuelve la vista (flag, rol) que consume el guard de navegación.
func (s *SessionStore) Sesion() navigation.Sesion {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.usuario == nil {
		return navigation.Sesion{}
	}
	return navigation.Sesion{Autenticada: true, Role: s.usuario.Role}
}

// persist guarda la sesión; el caller debe tener el lock. Un fallo del
// colaborador se envuelve en ErrPersistencia sin deshacer la mutación.
func (s *SessionStore) persist(ctx context.Context) error {
	datos, err := json.Marshal(sesionSnapshot{Usuario: s.usuario, Token: s.token})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	if err := s.snapshots.Save(ctx, repository.SnapshotAuth, datos); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	return nil
}
