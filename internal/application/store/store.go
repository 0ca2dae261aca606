// Package store es el almacén de entidades: un State explícito protegido por mutex,
// rehidratado desde un KVStore al arrancar y persistido por colección tras cada comando.
package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/notification"
	"github.com/girochef/girochef-api/internal/domain/repository"
	"github.com/girochef/girochef-api/pkg/currency"
	"github.com/girochef/girochef-api/pkg/logger"
)

// Options parámetros del almacén.
type Options struct {
	KeyPrefix  string                   // ej: "girochef_"
	Thresholds *notification.Thresholds // umbrales de alerta; nil usa los de fábrica, cero es válido
	Currency   string                   // código ISO 4217 de los mensajes
	Now        func() time.Time         // reloj; time.Now si es nil
}

// Store almacén de entidades. Los comandos se serializan con el mutex: cada
// comando se aplica completo o no se aplica.
type Store struct {
	mu         sync.RWMutex
	kv         repository.KVStore
	log        *logger.Logger
	opts       Options
	thresholds notification.Thresholds
	state      *State
	notifs     map[string][]entity.Notification // por empresa
}

// New construye el almacén con el conjunto de demostración en memoria. Llamar Load para rehidratar.
func New(kv repository.KVStore, log *logger.Logger, opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	th := notification.DefaultThresholds()
	if opts.Thresholds != nil {
		th = *opts.Thresholds
	}
	if !currency.Valid(opts.Currency) {
		opts.Currency = currency.DefaultCode
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		kv:         kv,
		log:        log.Named("store"),
		opts:       opts,
		thresholds: th,
		state:      SeedState(),
		notifs:     map[string][]entity.Notification{},
	}
}

// Thresholds umbrales configurados.
func (s *Store) Thresholds() notification.Thresholds { return s.thresholds }

// Currency moneda configurada.
func (s *Store) Currency() string { return s.opts.Currency }

// Now hora actual según el reloj del almacén.
func (s *Store) Now() time.Time { return s.opts.Now() }

// Load rehidrata cada colección desde el KVStore. Un valor ausente o corrupto se
// reemplaza por el de demostración; el error se registra y nunca se devuelve.
// Al terminar vuelve a escribir todas las colecciones.
func (s *Store) Load(ctx context.Context) {
	seed := SeedState()
	st := NewState()

	loadKey(ctx, s, KeyCompanies, &st.Companies, seed.Companies)
	if len(st.Companies) == 0 {
		s.log.Warn().Str("key", s.key(KeyCompanies)).Msg("lista de empresas vacía, se usa la de demostración")
		st.Companies = seed.Companies
	}

	var selected *entity.Company
	loadKey(ctx, s, KeySelectedCompany, &selected, (*entity.Company)(nil))
	st.ActiveCompanyID = st.Companies[0].ID
	if selected != nil {
		if _, ok := st.Company(selected.ID); ok {
			st.ActiveCompanyID = selected.ID
		}
	}

	loadKey(ctx, s, KeyTransactions, &st.Transactions, seed.Transactions)
	loadKey(ctx, s, KeyMenuItems, &st.MenuItems, seed.MenuItems)
	loadKey(ctx, s, KeyProducts, &st.Products, seed.Products)
	loadKey(ctx, s, KeyOutputs, &st.Outputs, seed.Outputs)
	loadKey(ctx, s, KeySuppliers, &st.Suppliers, seed.Suppliers)
	loadKey(ctx, s, KeyShoppingLists, &st.ShoppingLists, seed.ShoppingLists)
	ensureMaps(st)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
	s.notifs = map[string][]entity.Notification{}
	s.persist(ctx, AllKeys)
	s.refreshNotifications(st.ActiveCompanyID)
}

func loadKey[T any](ctx context.Context, s *Store, key string, dst *T, fallback T) {
	full := s.key(key)
	raw, found, err := s.kv.Get(ctx, full)
	if err != nil {
		s.log.Warn().Err(err).Str("key", full).Msg("lectura fallida, se usan datos por defecto")
		*dst = fallback
		return
	}
	if !found {
		s.log.Debug().Str("key", full).Msg("clave ausente, se usan datos por defecto")
		*dst = fallback
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn().Err(err).Str("key", full).Msg("valor corrupto, se usan datos por defecto")
		*dst = fallback
		return
	}
	*dst = v
}

func ensureMaps(st *State) {
	empty := NewState()
	if st.Transactions == nil {
		st.Transactions = empty.Transactions
	}
	if st.MenuItems == nil {
		st.MenuItems = empty.MenuItems
	}
	if st.Products == nil {
		st.Products = empty.Products
	}
	if st.Outputs == nil {
		st.Outputs = empty.Outputs
	}
	if st.Suppliers == nil {
		st.Suppliers = empty.Suppliers
	}
	if st.ShoppingLists == nil {
		st.ShoppingLists = empty.ShoppingLists
	}
}

func (s *Store) key(name string) string { return s.opts.KeyPrefix + name }

// View ejecuta fn con el estado vigente bajo lectura. fn no debe modificar ni retener el estado.
func (s *Store) View(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// Tx estado de trabajo de un comando. Las colecciones modificadas se marcan con Touch.
type Tx struct {
	*State
	keys      map[string]struct{}
	companies map[string]struct{}
}

// Touch marca colecciones modificadas en la partición companyID. Tocar productos
// o salidas regenera las notificaciones de esa empresa.
func (tx *Tx) Touch(companyID string, keys ...string) {
	for _, k := range keys {
		tx.keys[k] = struct{}{}
		if (k == KeyProducts || k == KeyOutputs) && companyID != "" {
			tx.companies[companyID] = struct{}{}
		}
	}
}

// Update aplica un comando. fn trabaja sobre una copia del estado: si devuelve error
// la copia se descarta y el estado vigente no cambia. Si termina bien, la copia pasa
// a ser el estado vigente, se persisten las colecciones tocadas y se recalculan las
// notificaciones afectadas. Los fallos de escritura solo se registran.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{State: s.state.Clone(), keys: map[string]struct{}{}, companies: map[string]struct{}{}}
	if err := fn(tx); err != nil {
		return err
	}
	prevActive := s.state.ActiveCompanyID
	s.state = tx.State

	keys := make([]string, 0, len(tx.keys))
	for k := range tx.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s.persist(context.WithoutCancel(ctx), keys)

	for cid := range tx.companies {
		s.refreshNotifications(cid)
	}
	if s.state.ActiveCompanyID != prevActive {
		s.refreshNotifications(s.state.ActiveCompanyID)
	}
	for cid := range s.notifs {
		if _, ok := s.state.Company(cid); !ok {
			delete(s.notifs, cid)
		}
	}
	return nil
}

func (s *Store) persist(ctx context.Context, keys []string) {
	for _, k := range keys {
		var v any
		switch k {
		case KeyCompanies:
			v = s.state.Companies
		case KeySelectedCompany:
			c, _ := s.state.ActiveCompany()
			v = c
		case KeyTransactions:
			v = s.state.Transactions
		case KeyMenuItems:
			v = s.state.MenuItems
		case KeyProducts:
			v = s.state.Products
		case KeyOutputs:
			v = s.state.Outputs
		case KeySuppliers:
			v = s.state.Suppliers
		case KeyShoppingLists:
			v = s.state.ShoppingLists
		default:
			continue
		}
		full := s.key(k)
		raw, err := json.Marshal(v)
		if err != nil {
			s.log.Error().Err(err).Str("key", full).Msg("serializar colección")
			continue
		}
		if err := s.kv.Set(ctx, full, raw); err != nil {
			s.log.Warn().Err(err).Str("key", full).Msg("persistencia fallida")
		}
	}
}

// refreshNotifications reemplaza la lista de la empresa. Requiere s.mu tomado en escritura.
func (s *Store) refreshNotifications(companyID string) {
	c, ok := s.state.Company(companyID)
	if !ok {
		delete(s.notifs, companyID)
		return
	}
	s.notifs[companyID] = notification.Derive(c, s.state.Products[companyID], s.state.Outputs[companyID],
		s.thresholds, s.opts.Now(), s.opts.Currency)
}

// Notifications devuelve una copia de la lista vigente de la empresa, derivándola si aún no existe.
func (s *Store) Notifications(companyID string) []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notifs[companyID]; !ok {
		s.refreshNotifications(companyID)
	}
	return append([]entity.Notification(nil), s.notifs[companyID]...)
}

// MarkNotificationRead marca una notificación como leída. La marca dura hasta el
// próximo recálculo de la lista.
func (s *Store) MarkNotificationRead(companyID, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notifs[companyID]; !ok {
		s.refreshNotifications(companyID)
	}
	list := s.notifs[companyID]
	for i := range list {
		if list[i].ID == id {
			list[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllNotificationsRead marca todas como leídas y devuelve cuántas cambiaron.
func (s *Store) MarkAllNotificationsRead(companyID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notifs[companyID]; !ok {
		s.refreshNotifications(companyID)
	}
	n := 0
	list := s.notifs[companyID]
	for i := range list {
		if !list[i].Read {
			list[i].Read = true
			n++
		}
	}
	return n
}
