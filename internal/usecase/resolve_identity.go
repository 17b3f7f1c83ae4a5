package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

// ResolveIdentityUseCase decides who the actor behind a request is:
// an authenticated user, a returning guest, or a brand-new guest.
type ResolveIdentityUseCase struct {
	Users UserRepositoryInterface
}

func NewResolveIdentityUseCase(users UserRepositoryInterface) *ResolveIdentityUseCase {
	return &ResolveIdentityUseCase{Users: users}
}

// Execute never fails. Precedence:
//  1. authenticatedUserID that resolves to an existing user → user identity
//  2. session already carries a session id → guest identity with that id
//  3. otherwise mint a fresh session id, store it in the session, and return
//     a guest identity carrying it
//
// A user lookup failure degrades to the guest path instead of propagating:
// tracking a visitor as a guest beats refusing the request.
func (uc *ResolveIdentityUseCase) Execute(ctx context.Context, session SessionState, authenticatedUserID string) entity.Identity {
	if authenticatedUserID != "" {
		user, err := uc.Users.FindByID(ctx, authenticatedUserID)
		if err == nil {
			return entity.UserIdentity(user.ID)
		}
		if !errors.Is(err, entity.ErrUserNotFound) {
			log.Printf("identity: user lookup for %s failed, falling back to guest: %v", authenticatedUserID, err)
		}
	}

	if sid := session.SessionID(); sid != "" {
		return entity.GuestIdentity(sid)
	}

	sid := uuid.New().String()
	session.SetSessionID(sid)
	return entity.GuestIdentity(sid)
}
