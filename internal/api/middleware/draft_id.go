package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationDesk/internal/api/handlers"
)

const msgDraftNotFound = "черновик не найден"

// DraftID отклоняет запросы, в которых {draftId} не является UUID
// Такой черновик не может существовать, запрос не доходит до хранилища
func DraftID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := uuid.Parse(mux.Vars(r)["draftId"]); err != nil {
			handlers.RespondNotFound(w, msgDraftNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
