package ticket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/devmofizur/ticketbot/pkg/entities"
	"github.com/stretchr/testify/require"
)

const testGuildID = "guild-1"

// fakeGateway is an in-memory stand-in for the discord session. It records
// channels, roles, role grants, permission overwrites and sent messages.
type fakeGateway struct {
	mu sync.Mutex

	nextID      int
	channels    map[string]*discordgo.Channel
	roles       map[string]*discordgo.Role
	memberRoles map[string][]string
	messages    map[string][]*discordgo.MessageSend
	perms       map[string]map[string]overwrite

	failChannelCreate error
	failRoleCreate    error
}

type overwrite struct {
	allow int64
	deny  int64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		channels:    make(map[string]*discordgo.Channel),
		roles:       make(map[string]*discordgo.Role),
		memberRoles: make(map[string][]string),
		messages:    make(map[string][]*discordgo.MessageSend),
		perms:       make(map[string]map[string]overwrite),
	}
}

func (g *fakeGateway) Channel(channelID string) (*discordgo.Channel, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.channels[channelID]
	if !ok {
		return nil, fmt.Errorf("channel %s not found", channelID)
	}
	cp := *c
	return &cp, nil
}

func (g *fakeGateway) GuildChannelCreate(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failChannelCreate != nil {
		return nil, g.failChannelCreate
	}
	g.nextID++
	c := &discordgo.Channel{
		ID:                   fmt.Sprintf("chan-%d", g.nextID),
		GuildID:              guildID,
		Name:                 data.Name,
		Type:                 data.Type,
		Topic:                data.Topic,
		ParentID:             data.ParentID,
		PermissionOverwrites: data.PermissionOverwrites,
	}
	g.channels[c.ID] = c
	cp := *c
	return &cp, nil
}

func (g *fakeGateway) ChannelEdit(channelID string, edit *discordgo.ChannelEdit) (*discordgo.Channel, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.channels[channelID]
	if !ok {
		return nil, fmt.Errorf("channel %s not found", channelID)
	}
	if edit.Name != "" {
		c.Name = edit.Name
	}
	cp := *c
	return &cp, nil
}

func (g *fakeGateway) ChannelDelete(channelID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.channels[channelID]; !ok {
		return fmt.Errorf("channel %s not found", channelID)
	}
	delete(g.channels, channelID)
	return nil
}

func (g *fakeGateway) ChannelPermissionSet(channelID, targetID string, _ discordgo.PermissionOverwriteType, allow, deny int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.channels[channelID]; !ok {
		return fmt.Errorf("channel %s not found", channelID)
	}
	if g.perms[channelID] == nil {
		g.perms[channelID] = make(map[string]overwrite)
	}
	g.perms[channelID][targetID] = overwrite{allow: allow, deny: deny}
	return nil
}

func (g *fakeGateway) ChannelMessageSend(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.channels[channelID]; !ok {
		return nil, fmt.Errorf("channel %s not found", channelID)
	}
	g.messages[channelID] = append(g.messages[channelID], msg)
	return &discordgo.Message{ID: fmt.Sprintf("msg-%d", len(g.messages[channelID])), ChannelID: channelID}, nil
}

func (g *fakeGateway) GuildRoles(_ string) ([]*discordgo.Role, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	roles := make([]*discordgo.Role, 0, len(g.roles))
	for _, r := range g.roles {
		cp := *r
		roles = append(roles, &cp)
	}
	return roles, nil
}

func (g *fakeGateway) GuildRoleCreate(_ string, name string) (*discordgo.Role, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failRoleCreate != nil {
		return nil, g.failRoleCreate
	}
	g.nextID++
	r := &discordgo.Role{ID: fmt.Sprintf("role-%d", g.nextID), Name: name}
	g.roles[r.ID] = r
	cp := *r
	return &cp, nil
}

func (g *fakeGateway) GuildRoleRename(_ string, roleID, name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.roles[roleID]
	if !ok {
		return fmt.Errorf("role %s not found", roleID)
	}
	r.Name = name
	return nil
}

func (g *fakeGateway) GuildRoleDelete(_ string, roleID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.roles[roleID]; !ok {
		return fmt.Errorf("role %s not found", roleID)
	}
	delete(g.roles, roleID)
	return nil
}

func (g *fakeGateway) GuildMemberRoleAdd(_ string, userID, roleID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.memberRoles[userID] = append(g.memberRoles[userID], roleID)
	return nil
}

// member builds a member snapshot with the roles the user currently holds,
// the way the router would fetch one from discord.
func (g *fakeGateway) member(userID, username string) *discordgo.Member {
	g.mu.Lock()
	defer g.mu.Unlock()
	roles := make([]string, len(g.memberRoles[userID]))
	copy(roles, g.memberRoles[userID])
	return &discordgo.Member{
		User:  &discordgo.User{ID: userID, Username: username},
		Roles: roles,
	}
}

func (g *fakeGateway) channelByName(name string) *discordgo.Channel {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, c := range g.channels {
		if c.Name == name {
			cp := *c
			return &cp
		}
	}
	return nil
}

func (g *fakeGateway) roleByName(name string) *discordgo.Role {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, r := range g.roles {
		if r.Name == name {
			cp := *r
			return &cp
		}
	}
	return nil
}

func (g *fakeGateway) addChannel(name string) *discordgo.Channel {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	c := &discordgo.Channel{ID: fmt.Sprintf("chan-%d", g.nextID), GuildID: testGuildID, Name: name}
	g.channels[c.ID] = c
	return c
}

func (g *fakeGateway) addRole(name string) *discordgo.Role {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	r := &discordgo.Role{ID: fmt.Sprintf("role-%d", g.nextID), Name: name}
	g.roles[r.ID] = r
	return r
}

func (g *fakeGateway) removeRole(roleID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.roles, roleID)
}

func (g *fakeGateway) overwriteFor(channelID, targetID string) (overwrite, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	ow, ok := g.perms[channelID][targetID]
	return ow, ok
}

func (g *fakeGateway) messageCount(channelID string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.messages[channelID])
}

// memConfigs is an in-memory ConfigDal.
type memConfigs struct {
	mu   sync.Mutex
	cfgs map[string]*entities.GuildConfig
}

func (m *memConfigs) GetConfig(_ context.Context, guildID string) (*entities.GuildConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.cfgs[guildID]; ok {
		cp := *c
		return &cp, nil
	}
	return &entities.GuildConfig{GuildID: guildID}, nil
}

func (m *memConfigs) SetSupportRole(_ context.Context, guildID, roleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cfgs[guildID]
	if !ok {
		c = &entities.GuildConfig{GuildID: guildID}
		m.cfgs[guildID] = c
	}
	c.SupportRoleID = roleID
	return nil
}

func (m *memConfigs) SetTicketCategory(_ context.Context, guildID, categoryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cfgs[guildID]
	if !ok {
		c = &entities.GuildConfig{GuildID: guildID}
		m.cfgs[guildID] = c
	}
	c.TicketCategoryID = categoryID
	return nil
}

// memCounters is an in-memory CounterDal.
type memCounters struct {
	mu     sync.Mutex
	counts map[string]int
}

func (m *memCounters) Peek(_ context.Context, guildID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts[guildID] == 0 {
		m.counts[guildID] = 1
	}
	return m.counts[guildID], nil
}

func (m *memCounters) Advance(_ context.Context, guildID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts[guildID] == 0 {
		return fmt.Errorf("no ticket counter for guild %s", guildID)
	}
	m.counts[guildID]++
	return nil
}

func (m *memCounters) current(guildID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[guildID]
}

func newFixture() (*Lifecycle, *fakeGateway, *memConfigs, *memCounters) {
	gw := newFakeGateway()
	configs := &memConfigs{cfgs: make(map[string]*entities.GuildConfig)}
	counters := &memCounters{counts: make(map[string]int)}
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLifecycle(l, gw, configs, counters), gw, configs, counters
}

// configureSupport creates the support role in the fake guild and stores it
// in the guild config, as /setup would.
func configureSupport(gw *fakeGateway, configs *memConfigs) *discordgo.Role {
	role := gw.addRole("Support Team")
	_ = configs.SetSupportRole(context.Background(), testGuildID, role.ID)
	return role
}

func TestCreate(t *testing.T) {
	lc, gw, configs, counters := newFixture()
	support := configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)
	require.Equal(t, "ticket-001", channel.Name)

	// Channel overwrites deny @everyone and allow the support role.
	var everyoneDenied, supportAllowed bool
	for _, ow := range channel.PermissionOverwrites {
		switch ow.ID {
		case testGuildID:
			everyoneDenied = ow.Deny&discordgo.PermissionViewChannel != 0
		case support.ID:
			supportAllowed = ow.Allow&discordgo.PermissionViewChannel != 0 && ow.Allow&discordgo.PermissionSendMessages != 0
		}
	}
	require.True(t, everyoneDenied, "@everyone should be denied view access")
	require.True(t, supportAllowed, "support role should have read and write access")

	// The paired role exists under the same name and the creator holds it.
	pairedRole := gw.roleByName("ticket-001")
	require.NotNil(t, pairedRole)
	require.Contains(t, gw.member("u1", "alice").Roles, pairedRole.ID)

	// The role got read and write on the channel.
	ow, ok := gw.overwriteFor(channel.ID, pairedRole.ID)
	require.True(t, ok)
	require.Equal(t, int64(readWritePermissions), ow.allow)

	// Welcome message posted, counter advanced exactly once.
	require.Equal(t, 1, gw.messageCount(channel.ID))
	require.Equal(t, 2, counters.current(testGuildID))
}

func TestCreateUsesConfiguredCategory(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	configureSupport(gw, configs)
	category := gw.addChannel("Tickets")
	require.NoError(t, configs.SetTicketCategory(context.Background(), testGuildID, category.ID))

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)
	require.Equal(t, category.ID, channel.ParentID)
}

func TestCreateMissingCategoryFallsBack(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	configureSupport(gw, configs)
	require.NoError(t, configs.SetTicketCategory(context.Background(), testGuildID, "gone"))

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)
	require.Empty(t, channel.ParentID)
}

func TestCreateNotConfigured(t *testing.T) {
	lc, gw, _, counters := newFixture()

	_, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.ErrorIs(t, err, ErrNotConfigured)
	require.Equal(t, 0, counters.current(testGuildID))
}

func TestCreateSupportRoleMissing(t *testing.T) {
	lc, gw, configs, counters := newFixture()
	// Configured, but the role was deleted from the guild afterwards.
	require.NoError(t, configs.SetSupportRole(context.Background(), testGuildID, "deleted-role"))

	_, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.ErrorIs(t, err, ErrSupportRoleMissing)
	require.Equal(t, 0, counters.current(testGuildID))
}

func TestCreateFailureDoesNotAdvanceCounter(t *testing.T) {
	lc, gw, configs, counters := newFixture()
	configureSupport(gw, configs)

	gw.failRoleCreate = errors.New("missing permission")
	_, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.Error(t, err)
	require.Equal(t, 1, counters.current(testGuildID))

	// The next attempt takes the same number; no gap was burned.
	gw.failRoleCreate = nil
	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)
	require.Equal(t, "ticket-001", channel.Name)
	require.Equal(t, 2, counters.current(testGuildID))
}

func TestCloseReopenRoundTrip(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)
	pairedRole := gw.roleByName("ticket-001")
	require.NotNil(t, pairedRole)

	// The creator may close their own ticket.
	require.NoError(t, lc.Close(context.Background(), testGuildID, channel.ID, gw.member("u1", "alice")))
	require.Equal(t, "closed-001", gw.channelByName("closed-001").Name)
	require.Equal(t, "closed-001", gw.roleByName("closed-001").Name)

	ow, ok := gw.overwriteFor(channel.ID, pairedRole.ID)
	require.True(t, ok)
	require.Equal(t, int64(discordgo.PermissionViewChannel), ow.deny)

	// Reopening restores the original names and the role's access.
	require.NoError(t, lc.Reopen(context.Background(), testGuildID, channel.ID, gw.member("u1", "alice")))
	require.NotNil(t, gw.channelByName("ticket-001"))
	require.NotNil(t, gw.roleByName("ticket-001"))

	ow, ok = gw.overwriteFor(channel.ID, pairedRole.ID)
	require.True(t, ok)
	require.Equal(t, int64(readWritePermissions), ow.allow)
	require.Zero(t, ow.deny)

	// Welcome, closed and reopened messages.
	require.Equal(t, 3, gw.messageCount(channel.ID))
}

func TestCloseByStaff(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	support := configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)

	require.NoError(t, gw.GuildMemberRoleAdd(testGuildID, "u2", support.ID))
	require.NoError(t, lc.Close(context.Background(), testGuildID, channel.ID, gw.member("u2", "bob")))
	require.NotNil(t, gw.channelByName("closed-001"))
}

func TestCloseUnauthorized(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)

	err = lc.Close(context.Background(), testGuildID, channel.ID, gw.member("u3", "mallory"))
	require.ErrorIs(t, err, ErrUnauthorized)
	require.NotNil(t, gw.channelByName("ticket-001"))
	require.Equal(t, 1, gw.messageCount(channel.ID))
}

func TestCloseNotATicket(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	configureSupport(gw, configs)
	general := gw.addChannel("general")

	err := lc.Close(context.Background(), testGuildID, general.ID, gw.member("u1", "alice"))
	require.ErrorIs(t, err, ErrNotATicket)
	require.Zero(t, gw.messageCount(general.ID))
}

func TestCloseMissingRoleIsSkipped(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	support := configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)

	// An admin removed the paired role out of band; close continues without
	// the role steps.
	gw.removeRole(gw.roleByName("ticket-001").ID)
	require.NoError(t, gw.GuildMemberRoleAdd(testGuildID, "u2", support.ID))
	require.NoError(t, lc.Close(context.Background(), testGuildID, channel.ID, gw.member("u2", "bob")))
	require.NotNil(t, gw.channelByName("closed-001"))
	require.Nil(t, gw.roleByName("closed-001"))
}

func TestReopenNotAClosedTicket(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)

	err = lc.Reopen(context.Background(), testGuildID, channel.ID, gw.member("u1", "alice"))
	require.ErrorIs(t, err, ErrNotATicket)
}

func TestReopenRecreatesMissingRole(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	support := configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)
	require.NoError(t, gw.GuildMemberRoleAdd(testGuildID, "u2", support.ID))
	require.NoError(t, lc.Close(context.Background(), testGuildID, channel.ID, gw.member("u2", "bob")))

	// The paired role vanished while the ticket was closed.
	gw.removeRole(gw.roleByName("closed-001").ID)

	require.NoError(t, lc.Reopen(context.Background(), testGuildID, channel.ID, gw.member("u2", "bob")))
	recreated := gw.roleByName("ticket-001")
	require.NotNil(t, recreated)

	ow, ok := gw.overwriteFor(channel.ID, recreated.ID)
	require.True(t, ok)
	require.Equal(t, int64(readWritePermissions), ow.allow)
}

func TestDeleteStaffOnly(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)

	// The creator is not staff; deletion is refused and nothing changes.
	err = lc.Delete(context.Background(), testGuildID, channel.ID, gw.member("u1", "alice"))
	require.ErrorIs(t, err, ErrUnauthorized)
	require.NotNil(t, gw.channelByName("ticket-001"))
	require.NotNil(t, gw.roleByName("ticket-001"))
}

func TestDelete(t *testing.T) {
	lc, gw, configs, counters := newFixture()
	support := configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)

	require.NoError(t, gw.GuildMemberRoleAdd(testGuildID, "u2", support.ID))
	require.NoError(t, lc.Delete(context.Background(), testGuildID, channel.ID, gw.member("u2", "bob")))
	require.Nil(t, gw.channelByName("ticket-001"))
	require.Nil(t, gw.roleByName("ticket-001"))

	// Numbers are never reused, even after deletion.
	require.Equal(t, 2, counters.current(testGuildID))
}

func TestDeleteSupportRoleGone(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	support := configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)

	require.NoError(t, gw.GuildMemberRoleAdd(testGuildID, "u2", support.ID))
	gw.removeRole(support.ID)

	// A vanished support role must not widen access, even for a member who
	// used to hold it.
	err = lc.Delete(context.Background(), testGuildID, channel.ID, gw.member("u2", "bob"))
	require.ErrorIs(t, err, ErrSupportRoleMissing)
	require.NotNil(t, gw.channelByName("ticket-001"))
}

func TestDeleteNotATicket(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	support := configureSupport(gw, configs)
	general := gw.addChannel("general")

	require.NoError(t, gw.GuildMemberRoleAdd(testGuildID, "u2", support.ID))
	err := lc.Delete(context.Background(), testGuildID, general.ID, gw.member("u2", "bob"))
	require.ErrorIs(t, err, ErrNotATicket)
	require.NotNil(t, gw.channelByName("general"))
}

func TestDeleteTwiceFailsGracefully(t *testing.T) {
	lc, gw, configs, _ := newFixture()
	support := configureSupport(gw, configs)

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)

	require.NoError(t, gw.GuildMemberRoleAdd(testGuildID, "u2", support.ID))
	require.NoError(t, lc.Delete(context.Background(), testGuildID, channel.ID, gw.member("u2", "bob")))

	// A second click on an already-deleted ticket reports the failure
	// instead of corrupting state.
	err = lc.Delete(context.Background(), testGuildID, channel.ID, gw.member("u2", "bob"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnauthorized)
}

func TestConcurrentCreatesDistinctNumbers(t *testing.T) {
	lc, gw, configs, counters := newFixture()
	configureSupport(gw, configs)

	const n = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		names = make(map[string]struct{})
		errs  []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("u%d", i)
			channel, err := lc.Create(context.Background(), testGuildID, gw.member(userID, userID))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			names[channel.Name] = struct{}{}
		}(i)
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, names, n, "each creation must take a distinct ticket number")
	require.Equal(t, n+1, counters.current(testGuildID))
}

// TestLifecycleScenario walks the full open-close-reopen-delete path from
// the spec: counter 1, create ticket-001, close to closed-001, reopen back,
// staff delete, counter still 2.
func TestLifecycleScenario(t *testing.T) {
	lc, gw, configs, counters := newFixture()
	support := configureSupport(gw, configs)
	require.NoError(t, gw.GuildMemberRoleAdd(testGuildID, "staff", support.ID))

	channel, err := lc.Create(context.Background(), testGuildID, gw.member("u1", "alice"))
	require.NoError(t, err)
	require.Equal(t, "ticket-001", channel.Name)
	require.Equal(t, "ticket-001", gw.roleByName("ticket-001").Name)
	require.Equal(t, 2, counters.current(testGuildID))

	require.NoError(t, lc.Close(context.Background(), testGuildID, channel.ID, gw.member("u1", "alice")))
	require.NotNil(t, gw.channelByName("closed-001"))
	require.NotNil(t, gw.roleByName("closed-001"))

	require.NoError(t, lc.Reopen(context.Background(), testGuildID, channel.ID, gw.member("u1", "alice")))
	require.NotNil(t, gw.channelByName("ticket-001"))
	require.NotNil(t, gw.roleByName("ticket-001"))

	require.NoError(t, lc.Delete(context.Background(), testGuildID, channel.ID, gw.member("staff", "staff")))
	require.Nil(t, gw.channelByName("ticket-001"))
	require.Nil(t, gw.roleByName("ticket-001"))
	require.Equal(t, 2, counters.current(testGuildID))
}
