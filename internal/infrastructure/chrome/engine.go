package chrome

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/go-rod/rod/lib/launcher"

	"github.com/jhoicas/rekini-api/internal/domain"
)

// Engine instancia de Chromium adquirida para una única petición.
// Quien la adquiere debe llamar a Close en toda salida (éxito, error de
// validación o crash del render): una instancia filtrada deja un proceso
// de navegador vivo y agota el host tras suficientes peticiones.
type Engine struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// Context contexto de navegador sobre el que abrir pestañas.
func (e *Engine) Context() context.Context { return e.ctx }

// Close termina el proceso del navegador y libera sus recursos. Idempotente.
func (e *Engine) Close() { e.cancel() }

// EngineProvider adquiere un motor de renderizado apropiado al entorno de
// despliegue. La decisión local-vs-gestionado la toma la configuración,
// nunca la lógica de render.
type EngineProvider interface {
	Acquire(ctx context.Context) (*Engine, error)
}

// LocalProvider lanza un Chromium ya instalado en el host (o el que
// indique Path). Es el proveedor de desarrollo y de despliegues normales.
type LocalProvider struct {
	Path      string // vacío = búsqueda en rutas estándar
	NoSandbox bool   // necesario al correr como root (contenedores)
}

// Acquire arranca el navegador de forma anticipada para que un fallo de
// adquisición salga aquí como domain.ErrEngineUnavailable y no se
// confunda con un fallo de render posterior.
func (p *LocalProvider) Acquire(ctx context.Context) (*Engine, error) {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("no-first-run", true),
	)
	if p.Path != "" {
		opts = append(opts, chromedp.ExecPath(p.Path))
	}
	if p.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("%w: arranque de chromium: %v", domain.ErrEngineUnavailable, err)
	}

	return &Engine{
		ctx: browserCtx,
		cancel: func() {
			browserCancel()
			allocCancel()
		},
	}, nil
}

// ManagedProvider para entornos restringidos sin Chromium instalado
// (contenedores mínimos, serverless): localiza o descarga un binario
// compatible con el launcher de rod y delega el arranque en LocalProvider.
// El binario queda cacheado, así que la descarga ocurre una sola vez.
type ManagedProvider struct {
	NoSandbox bool
}

// Acquire resuelve el binario y arranca el navegador.
func (p *ManagedProvider) Acquire(ctx context.Context) (*Engine, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return nil, fmt.Errorf("%w: descarga de chromium: %v", domain.ErrEngineUnavailable, err)
	}
	local := &LocalProvider{Path: path, NoSandbox: p.NoSandbox}
	return local.Acquire(ctx)
}
