package vault

import "context"

// KVService wraps a version 1 key/value secrets engine.
type KVService struct {
	node
}

// Read returns the secret stored at path.
func (s *KVService) Read(ctx context.Context, path string) (map[string]interface{}, error) {
	if err := requireArg("path", path); err != nil {
		return nil, err
	}
	return fetch[map[string]interface{}](ctx, s.node, get(s.endpoint(path)), FieldData)
}

// Write replaces the secret stored at path.
func (s *KVService) Write(ctx context.Context, path string, data map[string]interface{}) error {
	if err := requireArg("path", path); err != nil {
		return err
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	return exec(ctx, s.node, post(s.endpoint(path), data))
}

// Delete removes the secret stored at path.
func (s *KVService) Delete(ctx context.Context, path string) error {
	if err := requireArg("path", path); err != nil {
		return err
	}
	return exec(ctx, s.node, del(s.endpoint(path)))
}

// List returns the keys under path. Folders end in "/".
func (s *KVService) List(ctx context.Context, path string) ([]string, error) {
	keys, err := fetch[keyList](ctx, s.node, list(s.endpoint(path)), FieldData)
	if err != nil {
		return nil, err
	}
	return keys.Keys, nil
}
