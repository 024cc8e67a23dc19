package internal

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"runtime"
	"strconv"

	"github.com/earthboundkid/versioninfo/v2"
)

func ShowVersion() {
	fmt.Printf("Version: %s (%s)\n", versioninfo.Short(), runtime.Version())
}

// UserInfo logs the identity the process runs as, which decides whether the
// gallery and output directories are readable and writable.
func UserInfo() {
	log.Printf("PID: %d", os.Getpid())
	currentUser, err := user.Current()
	if err != nil {
		log.Printf("Error getting current user: %v", err)
	} else {
		log.Printf("User: uid=%s(%s) gid=%s", currentUser.Uid, currentUser.Username, currentUser.Gid)
	}
	groups, err := os.Getgroups()
	if err != nil {
		log.Printf("Error getting groups: %v", err)
		return
	}
	groupNames := make([]string, 0, len(groups))
	for _, gid := range groups {
		if group, err := user.LookupGroupId(strconv.Itoa(gid)); err == nil {
			groupNames = append(groupNames, fmt.Sprintf("%s(%s)", group.Name, group.Gid))
		} else {
			groupNames = append(groupNames, strconv.Itoa(gid))
		}
	}
	log.Printf("Groups: %v", groupNames)
}
