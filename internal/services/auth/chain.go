package auth

import "errors"

// Chain consults each store in order for reads. Writes and deletes go to
// the last store, which is expected to be the persistent one.
type Chain struct {
	stores []Store
}

func NewChain(stores ...Store) *Chain {
	return &Chain{stores: stores}
}

func (c *Chain) GetToken(provider string) (string, error) {
	for _, s := range c.stores {
		token, err := s.GetToken(provider)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, ErrTokenNotFound) {
			return "", err
		}
	}
	return "", ErrTokenNotFound
}

func (c *Chain) SetToken(provider string, token string) error {
	if len(c.stores) == 0 {
		return ErrTokenNotFound
	}
	return c.stores[len(c.stores)-1].SetToken(provider, token)
}

func (c *Chain) DeleteToken(provider string) error {
	if len(c.stores) == 0 {
		return ErrTokenNotFound
	}
	return c.stores[len(c.stores)-1].DeleteToken(provider)
}
