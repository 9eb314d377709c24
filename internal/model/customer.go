package model

import "time"

type Customer struct {
	ID                 string    `json:"id" dynamodbav:"id"`
	Name               string    `json:"name" dynamodbav:"name"`
	Email              string    `json:"email" dynamodbav:"email"`
	Phone              string    `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	SatisfactionRating *float64  `json:"satisfactionRating,omitempty" dynamodbav:"satisfactionRating,omitempty"`
	Tags               []string  `json:"tags" dynamodbav:"tags"`
	CreatedAt          time.Time `json:"createdAt" dynamodbav:"createdAt"`
}

// CustomerPatch carries the fields of a partial customer update. Nil fields
// are left untouched.
type CustomerPatch struct {
	Name               *string
	Email              *string
	Phone              *string
	SatisfactionRating *float64
	Tags               []string
}

func (c Customer) Clone() Customer {
	c.Tags = cloneStrings(c.Tags)
	if c.SatisfactionRating != nil {
		rating := *c.SatisfactionRating
		c.SatisfactionRating = &rating
	}
	return c
}

func (c *Customer) Apply(p CustomerPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.SatisfactionRating != nil {
		rating := *p.SatisfactionRating
		c.SatisfactionRating = &rating
	}
	if p.Tags != nil {
		c.Tags = cloneStrings(p.Tags)
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
