package usecase

import (
	"context"

	"github.com/jhoicas/Usuarios-api/internal/application/dto"
	"github.com/jhoicas/Usuarios-api/internal/domain"
	"github.com/jhoicas/Usuarios-api/internal/domain/entity"
	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
	"github.com/jhoicas/Usuarios-api/pkg/password"
)

// UsuariosEntityName nombre de la entidad en alertas y errores.
const UsuariosEntityName = "astenEnsinoUsuarios"

// UsuariosUseCase casos de uso CRUD para usuarios.
type UsuariosUseCase struct {
	repo    repository.UsuariosRepository
	tx      UsuariosTxRunner
	encoder password.Encoder
}

// NewUsuariosUseCase construye el caso de uso. Con encoder nil las contraseñas se guardan tal cual.
func NewUsuariosUseCase(repo repository.UsuariosRepository, tx UsuariosTxRunner, encoder password.Encoder) *UsuariosUseCase {
	if encoder == nil {
		encoder = password.Plain{}
	}
	return &UsuariosUseCase{repo: repo, tx: tx, encoder: encoder}
}

// Create crea un usuario nuevo. El cuerpo no puede traer id.
func (uc *UsuariosUseCase) Create(ctx context.Context, in dto.UsuariosRequest) (*dto.UsuariosResponse, error) {
	if in.ID != nil {
		return nil, domain.NewBadRequestAlert("A new usuarios cannot already have an ID", UsuariosEntityName, "idexists")
	}
	pwd, err := uc.encode(in.Password)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, &entity.Usuarios{Email: in.Email, Password: pwd})
	if err != nil {
		return nil, err
	}
	return toUsuariosResponse(created), nil
}

// Update reemplaza el usuario id con el cuerpo recibido (campos null incluidos).
func (uc *UsuariosUseCase) Update(ctx context.Context, id int64, in dto.UsuariosRequest) (*dto.UsuariosResponse, error) {
	if err := checkPathID(id, in.ID); err != nil {
		return nil, err
	}
	pwd, err := uc.encode(in.Password)
	if err != nil {
		return nil, err
	}
	var saved *entity.Usuarios
	err = uc.tx.RunUsuarios(ctx, func(repo repository.UsuariosRepository) error {
		if err := mustExist(ctx, repo, id); err != nil {
			return err
		}
		saved, err = repo.Save(ctx, &entity.Usuarios{ID: &id, Email: in.Email, Password: pwd})
		return err
	})
	if err != nil {
		return nil, err
	}
	return toUsuariosResponse(saved), nil
}

// PartialUpdate copia sobre el usuario id solo los campos no nulos del cuerpo.
// Devuelve domain.ErrNotFound si el registro desapareció entre la comprobación y la lectura.
func (uc *UsuariosUseCase) PartialUpdate(ctx context.Context, id int64, in dto.UsuariosRequest) (*dto.UsuariosResponse, error) {
	if err := checkPathID(id, in.ID); err != nil {
		return nil, err
	}
	pwd, err := uc.encode(in.Password)
	if err != nil {
		return nil, err
	}
	var saved *entity.Usuarios
	err = uc.tx.RunUsuarios(ctx, func(repo repository.UsuariosRepository) error {
		if err := mustExist(ctx, repo, id); err != nil {
			return err
		}
		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if in.Email != nil {
			existing.Email = in.Email
		}
		if pwd != nil {
			existing.Password = pwd
		}
		saved, err = repo.Save(ctx, existing)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toUsuariosResponse(saved), nil
}

// List devuelve una página de usuarios.
func (uc *UsuariosUseCase) List(ctx context.Context, p repository.Pageable) (*dto.UsuariosPage, error) {
	page, err := uc.repo.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuariosResponse, 0, len(page.Content))
	for _, u := range page.Content {
		items = append(items, *toUsuariosResponse(u))
	}
	return &dto.UsuariosPage{
		Items: items,
		Page: dto.PageResponse{
			Number:     page.Number,
			Size:       page.Size,
			Total:      page.Total,
			TotalPages: page.TotalPages(),
		},
	}, nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (uc *UsuariosUseCase) GetByID(ctx context.Context, id int64) (*dto.UsuariosResponse, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUsuariosResponse(u), nil
}

// Delete elimina un usuario por ID. No falla si no existe.
func (uc *UsuariosUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.DeleteByID(ctx, id)
}

func (uc *UsuariosUseCase) encode(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	encoded, err := uc.encoder.Encode(*raw)
	if err != nil {
		return nil, err
	}
	return &encoded, nil
}

func checkPathID(pathID int64, bodyID *int64) error {
	if bodyID == nil {
		return domain.NewBadRequestAlert("Invalid id", UsuariosEntityName, "idnull")
	}
	if *bodyID != pathID {
		return domain.NewBadRequestAlert("Invalid ID", UsuariosEntityName, "idinvalid")
	}
	return nil
}

func mustExist(ctx context.Context, repo repository.UsuariosRepository, id int64) error {
	exists, err := repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundAlert("Entity not found", UsuariosEntityName, "idnotfound")
	}
	return nil
}

func toUsuariosResponse(u *entity.Usuarios) *dto.UsuariosResponse {
	if u == nil {
		return nil
	}
	out := &dto.UsuariosResponse{Email: u.Email, Password: u.Password}
	if u.ID != nil {
		out.ID = *u.ID
	}
	return out
}
