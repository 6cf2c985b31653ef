// Package graph is the transport adapter: it binds the GraphQL schema to
// the query/mutation services. All resolution logic lives in the services
// and the registry; this package only does dispatch wiring.
package graph

import (
	"chatgraph/domain"
	"chatgraph/services"
	"chatgraph/store"

	"github.com/graphql-go/graphql"
	"github.com/samber/lo"
)

// NewSchema builds the executable schema at runtime. The type shape mirrors
// the public contract exactly: User, Message and Chat with their derived
// fields, five queries and two mutations.
func NewSchema(queries services.IQueryService, mutations services.IMutationService, registry *store.UserRegistry) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	messageType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Message",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"text":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					message := p.Source.(domain.Message)
					if canonical, ok := registry.Resolve(message.User.ID); ok {
						return canonical, nil
					}
					return message.User, nil
				},
			},
		},
	})

	chatType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Chat",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	// Circular fields (Chat.users -> User, User.chats -> Chat) are attached
	// after both objects exist.
	chatType.AddFieldConfig("users", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			chat := p.Source.(domain.Chat)
			return lo.Map(chat.Users, func(user domain.User, _ int) domain.User {
				if canonical, ok := registry.Resolve(user.ID); ok {
					return canonical
				}
				return user
			}), nil
		},
	})
	chatType.AddFieldConfig("messages", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(messageType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			chat := p.Source.(domain.Chat)
			if chat.Messages == nil {
				return []domain.Message{}, nil
			}
			return chat.Messages, nil
		},
	})
	userType.AddFieldConfig("chats", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(chatType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user := p.Source.(domain.User)
			return registry.ChatsFor(user.ID), nil
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"chats": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(chatType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return queries.Chats(), nil
				},
			},
			"chat": &graphql.Field{
				Type: chatType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					chat := queries.Chat(p.Args["id"].(string))
					if chat == nil {
						return nil, nil
					}
					return *chat, nil
				},
			},
			"messages": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(messageType))),
				Args: graphql.FieldConfigArgument{
					"chatId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return queries.Messages(p.Args["chatId"].(string)), nil
				},
			},
			"searchChats": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(chatType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return queries.SearchChats(p.Args["query"].(string)), nil
				},
			},
			"searchMessages": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(messageType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return queries.SearchMessages(p.Args["query"].(string)), nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createChat": &graphql.Field{
				Type: graphql.NewNonNull(chatType),
				Args: graphql.FieldConfigArgument{
					"userIds": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID))),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw := p.Args["userIds"].([]interface{})
					userIDs := lo.Map(raw, func(v interface{}, _ int) string {
						return v.(string)
					})
					return mutations.CreateChat(p.Context, userIDs)
				},
			},
			"sendMessage": &graphql.Field{
				Type: graphql.NewNonNull(messageType),
				Args: graphql.FieldConfigArgument{
					"chatId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"text":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return mutations.SendMessage(
						p.Context,
						p.Args["chatId"].(string),
						p.Args["userId"].(string),
						p.Args["text"].(string),
					)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
