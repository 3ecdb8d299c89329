package app

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/mystore-backend/internal/services"
)

// LocalIdentity derives a stable customer identity for the current OS user on
// this machine. The id is a name-based UUID so it survives reinstalls.
func LocalIdentity() (services.Identity, error) {
	u, err := user.Current()
	if err != nil {
		return services.Identity{}, fmt.Errorf("current user: %w", err)
	}
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	first, last := splitName(u.Name)
	if first == "" {
		first = u.Username
	}
	return services.Identity{
		NonRoamableID: identityID(host, u.Uid),
		FirstName:     first,
		LastName:      last,
	}, nil
}

func identityID(host, uid string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(host+"/"+uid)).String()
}

func splitName(full string) (first, last string) {
	// gecos fields may carry extra comma separated entries
	full, _, _ = strings.Cut(full, ",")
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
