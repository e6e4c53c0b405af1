package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// UnmarshallResponse decodes the JSON body of a recorded response into out
func UnmarshallResponse(res *bytes.Buffer, out interface{}) error {
	return json.Unmarshal(res.Bytes(), out)
}

// AddFormRequestToCtx attaches a url-encoded form request for target to the context
func AddFormRequestToCtx(ctx *gin.Context, method, target string, params map[string]string) {
	form := url.Values{}
	for key, val := range params {
		form.Set(key, val)
	}

	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	ctx.Request = req
}

// AddURLParamsToCtx sets the path params gin would have extracted from the route
func AddURLParamsToCtx(ctx *gin.Context, params map[string]string) {
	for key, val := range params {
		ctx.AddParam(key, val)
	}
}

// SetEnvVars sets given environment variables and provides a callback function to restore the variables to their initial values
func SetEnvVars(vars map[string]string) (restoreVars func()) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	restore := snapshotEnv(names)

	for name, value := range vars {
		if err := os.Setenv(name, value); err != nil {
			panic(err)
		}
	}
	return restore
}

// UnsetVars unsets given environment variables and provides a callback function to restore the variables to their initial values
func UnsetVars(vars ...string) (restoreVars func()) {
	restore := snapshotEnv(vars)

	for _, name := range vars {
		if err := os.Unsetenv(name); err != nil {
			panic(err)
		}
	}
	return restore
}

// snapshotEnv records the current state of the named variables and returns a function putting it back
func snapshotEnv(names []string) func() {
	type snapshot struct {
		value  string
		exists bool
	}
	saved := make(map[string]snapshot, len(names))
	for _, name := range names {
		value, exists := os.LookupEnv(name)
		saved[name] = snapshot{value: value, exists: exists}
	}

	return func() {
		for name, s := range saved {
			var err error
			if s.exists {
				err = os.Setenv(name, s.value)
			} else {
				err = os.Unsetenv(name)
			}
			if err != nil {
				panic(err)
			}
		}
	}
}

// RouterGroupMatcher is a gomock matcher for router groups with the given base path
type RouterGroupMatcher struct {
	Path string
}

// Matches implements the gomock.Matcher interface
func (r RouterGroupMatcher) Matches(x interface{}) bool {
	group, ok := x.(interface{ BasePath() string })
	if !ok {
		return false
	}
	return group.BasePath() == r.Path
}

func (r RouterGroupMatcher) String() string {
	return fmt.Sprintf("router group's base path is %s", r.Path)
}
