package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/totegamma/swcatalog/internal/domain"
	"github.com/totegamma/swcatalog/internal/present/rest/presenter"
	"github.com/totegamma/swcatalog/internal/service"
	"github.com/totegamma/swcatalog/internal/usecase"
)

type Handler struct {
	user      *usecase.UserUsecase
	character *usecase.CharacterUsecase
	planet    *usecase.PlanetUsecase
	film      *usecase.FilmUsecase
	favorite  *usecase.FavoriteUsecase
	signal    *service.SignalService
}

func NewHandler(
	user *usecase.UserUsecase,
	character *usecase.CharacterUsecase,
	planet *usecase.PlanetUsecase,
	film *usecase.FilmUsecase,
	favorite *usecase.FavoriteUsecase,
	signal *service.SignalService,
) *Handler {
	return &Handler{
		user:      user,
		character: character,
		planet:    planet,
		film:      film,
		favorite:  favorite,
		signal:    signal,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/users", h.handleGetUsers)
	e.GET("/user/:id", h.handleGetUser)
	e.POST("/user", h.handlePostUser)
	e.PUT("/user/:id", h.handlePutUser)
	e.DELETE("/user/:id", h.handleDeleteUser)

	e.GET("/characters", h.handleGetCharacters)
	e.GET("/character/:id", h.handleGetCharacter)
	e.POST("/character", h.handlePostCharacter)
	e.PUT("/character/:id", h.handlePutCharacter)
	e.DELETE("/character/:id", h.handleDeleteCharacter)

	e.GET("/planets", h.handleGetPlanets)
	e.GET("/planet/:id", h.handleGetPlanet)
	e.POST("/planet", h.handlePostPlanet)
	e.PUT("/planet/:id", h.handlePutPlanet)
	e.DELETE("/planet/:id", h.handleDeletePlanet)

	e.GET("/films", h.handleGetFilms)
	e.GET("/film/:id", h.handleGetFilm)
	e.POST("/film", h.handlePostFilm)
	e.PUT("/film/:id", h.handlePutFilm)
	e.DELETE("/film/:id", h.handleDeleteFilm)

	e.GET("/user/:id/favorites", h.handleGetUserFavorites)
	e.POST("/user/:user_id/favorites/character/:id", h.handlePostFavoriteCharacter)
	e.POST("/user/:user_id/favorites/planet/:id", h.handlePostFavoritePlanet)
	e.POST("/user/:user_id/favorites/film/:id", h.handlePostFavoriteFilm)
	e.DELETE("/favorites/character/:reg_id", h.handleDeleteFavoriteCharacterRegister)
	e.DELETE("/user/:user_id/favorites/character/:id", h.handleDeleteFavoriteCharacterPair)
	e.DELETE("/user/:user_id/favorites/planet/:id", h.handleDeleteFavoritePlanetPair)
	e.DELETE("/user/:user_id/favorites/film/:id", h.handleDeleteFavoriteFilmPair)

	e.GET("/realtime", h.handleRealtime)
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// --- users ---

func (h *Handler) handleGetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.user.List(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Getted(c, users)
}

func (h *Handler) handleGetUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	user, err := h.user.Get(ctx, id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Getted(c, user)
}

func (h *Handler) handlePostUser(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.UserCreateInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "malformed body")
	}

	user, err := h.user.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Posted(c, user)
}

func (h *Handler) handlePutUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	var input usecase.UserUpdateInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "malformed body")
	}

	user, notEdited, err := h.user.Update(ctx, id, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Put(c, user, notEdited)
}

func (h *Handler) handleDeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	user, err := h.user.Deactivate(ctx, id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Deleted(c, fmt.Sprintf("USER: %s", user.UserName))
}

// --- characters ---

func (h *Handler) handleGetCharacters(c echo.Context) error {
	ctx := c.Request().Context()

	characters, err := h.character.List(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Getted(c, characters)
}

func (h *Handler) handleGetCharacter(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	detail, err := h.character.Get(ctx, id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Getted(c, detail)
}

func (h *Handler) handlePostCharacter(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.CharacterCreateInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "malformed body")
	}

	character, missing, err := h.character.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.PostedWithMissing(c, character, missing)
}

func (h *Handler) handlePutCharacter(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	var input usecase.CharacterUpdateInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "malformed body")
	}

	character, notEdited, err := h.character.Update(ctx, id, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Put(c, character, notEdited)
}

func (h *Handler) handleDeleteCharacter(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	if err := h.character.Delete(ctx, id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Deleted(c, fmt.Sprintf("Character id:%d", id))
}

// --- planets ---

func (h *Handler) handleGetPlanets(c echo.Context) error {
	ctx := c.Request().Context()

	planets, err := h.planet.List(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Getted(c, planets)
}

func (h *Handler) handleGetPlanet(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	detail, err := h.planet.Get(ctx, id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Getted(c, detail)
}

func (h *Handler) handlePostPlanet(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.PlanetCreateInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "malformed body")
	}

	planet, missing, err := h.planet.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.PostedWithMissing(c, planet, missing)
}

func (h *Handler) handlePutPlanet(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	var input usecase.PlanetUpdateInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "malformed body")
	}

	planet, notEdited, err := h.planet.Update(ctx, id, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Put(c, planet, notEdited)
}

func (h *Handler) handleDeletePlanet(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	if err := h.planet.Delete(ctx, id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Deleted(c, fmt.Sprintf("Planet id:%d", id))
}

// --- films ---

func (h *Handler) handleGetFilms(c echo.Context) error {
	ctx := c.Request().Context()

	films, err := h.film.List(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Getted(c, films)
}

func (h *Handler) handleGetFilm(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	detail, err := h.film.Get(ctx, id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Getted(c, detail)
}

func (h *Handler) handlePostFilm(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.FilmCreateInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "feature_char and feature_planet must be lists of ids")
	}

	film, missing, err := h.film.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.PostedWithMissing(c, film, missing)
}

func (h *Handler) handlePutFilm(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	var input usecase.FilmUpdateInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "malformed body")
	}

	film, notEdited, err := h.film.Update(ctx, id, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Put(c, film, notEdited)
}

func (h *Handler) handleDeleteFilm(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	if err := h.film.Delete(ctx, id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Deleted(c, fmt.Sprintf("Film id:%d", id))
}

// --- favorites ---

func (h *Handler) handleGetUserFavorites(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	favorites, err := h.favorite.ListByUser(ctx, id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Getted(c, []any{favorites.Characters, favorites.Planets, favorites.Films})
}

func (h *Handler) handlePostFavoriteCharacter(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := pathID(c, "user_id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}
	characterID, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	favorite, err := h.favorite.FavoriteCharacter(ctx, userID, characterID)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Posted(c, favorite)
}

func (h *Handler) handlePostFavoritePlanet(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := pathID(c, "user_id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}
	planetID, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	favorite, err := h.favorite.FavoritePlanet(ctx, userID, planetID)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Posted(c, favorite)
}

func (h *Handler) handlePostFavoriteFilm(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := pathID(c, "user_id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}
	filmID, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	favorite, err := h.favorite.FavoriteFilm(ctx, userID, filmID)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Posted(c, favorite)
}

func (h *Handler) handleDeleteFavoriteCharacterRegister(c echo.Context) error {
	ctx := c.Request().Context()

	regID, err := pathID(c, "reg_id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	if err := h.favorite.RemoveCharacterRegister(ctx, regID); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Deleted(c, fmt.Sprintf("Favorites_Characters reg_id:%d", regID))
}

func (h *Handler) handleDeleteFavoriteCharacterPair(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := pathID(c, "user_id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}
	characterID, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	if err := h.favorite.RemoveCharacterPair(ctx, userID, characterID); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Deleted(c, fmt.Sprintf("Favorites_Characters user_id:%d character_id:%d", userID, characterID))
}

func (h *Handler) handleDeleteFavoritePlanetPair(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := pathID(c, "user_id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}
	planetID, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	if err := h.favorite.RemovePlanetPair(ctx, userID, planetID); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Deleted(c, fmt.Sprintf("Favorites_Planets user_id:%d planet_id:%d", userID, planetID))
}

func (h *Handler) handleDeleteFavoriteFilmPair(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := pathID(c, "user_id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}
	filmID, err := pathID(c, "id")
	if err != nil {
		return presenter.BadRequestMessage(c, err.Error())
	}

	if err := h.favorite.RemoveFilmPair(ctx, userID, filmID); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Deleted(c, fmt.Sprintf("Favorites_Films user_id:%d film_id:%d", userID, filmID))
}

// --- realtime ---

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type realtimeRequest struct {
	Type     string   `json:"type"`
	Prefixes []string `json:"prefixes"`
}

func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer func() {
		ws.Close()
	}()

	ctx := c.Request().Context()

	input := make(chan []string)
	defer close(input)
	output := make(chan domain.Event)

	go h.signal.Realtime(ctx, input, output)

	quit := make(chan struct{})

	go func() {
		for {
			var req realtimeRequest
			err := ws.ReadJSON(&req)
			if err != nil {

				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}

				quit <- struct{}{}
				break
			}

			switch req.Type {
			case "listen":
				input <- req.Prefixes
			case "h": // heartbeat
				// do nothing
			default:
				slog.InfoContext(
					ctx, "Unknown request type",
					slog.String("type", req.Type),
					slog.String("module", "socket"),
				)
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			err := ws.WriteJSON(event)
			if err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
